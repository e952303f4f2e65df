package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/resp"
	"github.com/mohanwork1803-cell/Foodie-Express/services"
	"github.com/mohanwork1803-cell/Foodie-Express/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

func actorFrom(c *gin.Context) *entity.User {
	return &entity.User{
		Model: gorm.Model{ID: utils.CurrentUserID(c)},
		Role:  utils.CurrentRole(c),
	}
}

// POST /api/orders/create_order
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.CreateFromCart(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.ListFor(actorFrom(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := h.Svc.GetFor(actorFrom(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/orders/:id/update_status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(actorFrom(c), uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
