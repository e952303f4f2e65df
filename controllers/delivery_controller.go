package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/resp"
	"github.com/mohanwork1803-cell/Foodie-Express/services"
	"github.com/mohanwork1803-cell/Foodie-Express/utils"
)

// DeliveryController serves the agent-only delivery surface. The route group
// is already gated to the agent role.
type DeliveryController struct{ Svc *services.DeliveryService }

func NewDeliveryController(s *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Svc: s}
}

// GET /api/agent/orders
func (h *DeliveryController) ListAssigned(c *gin.Context) {
	orders, err := h.Svc.ListAssigned(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /api/agent/orders/available_orders
func (h *DeliveryController) ListAvailable(c *gin.Context) {
	orders, err := h.Svc.ListAvailable()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// POST /api/agent/orders/:id/accept_order
func (h *DeliveryController) Accept(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := h.Svc.Accept(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/agent/orders/:id/update_delivery_status
func (h *DeliveryController) UpdateDeliveryStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateDeliveryStatus(utils.CurrentUserID(c), uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
