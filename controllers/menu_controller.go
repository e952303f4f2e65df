package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohanwork1803-cell/Foodie-Express/pkg/resp"
	"github.com/mohanwork1803-cell/Foodie-Express/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /api/menu?restaurant=
func (h *MenuController) List(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Query("restaurant"))

	items, err := h.Svc.List(uint(restID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/menu/categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// POST /api/menu/categories
func (h *MenuController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := h.Svc.CreateCategory(req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// POST /api/menu
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Create(actorFrom(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /api/menu/:id
func (h *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Update(actorFrom(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Delete(actorFrom(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
