package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohanwork1803-cell/Foodie-Express/pkg/resp"
	"github.com/mohanwork1803-cell/Foodie-Express/services"
	"github.com/mohanwork1803-cell/Foodie-Express/utils"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /api/restaurants
func (h *RestaurantController) List(c *gin.Context) {
	restaurants, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": restaurants})
}

// GET /api/restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	r, err := h.Svc.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, r)
}

// GET /api/restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	items, err := h.Svc.Menu(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /api/restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	r, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, r)
}

// PATCH /api/restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	r, err := h.Svc.Update(actorFrom(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, r)
}
