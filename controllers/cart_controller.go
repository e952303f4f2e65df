package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mohanwork1803-cell/Foodie-Express/pkg/resp"
	"github.com/mohanwork1803-cell/Foodie-Express/services"
	"github.com/mohanwork1803-cell/Foodie-Express/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.Add(utils.CurrentUserID(c), req.MenuItemID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /api/cart/remove
func (h *CartController) Remove(c *gin.Context) {
	var req struct {
		CartItemID uint `json:"cart_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.Remove(utils.CurrentUserID(c), req.CartItemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /api/cart/update_quantity
func (h *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		CartItemID uint `json:"cart_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), req.CartItemID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}
