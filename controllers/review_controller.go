package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohanwork1803-cell/Foodie-Express/pkg/resp"
	"github.com/mohanwork1803-cell/Foodie-Express/services"
	"github.com/mohanwork1803-cell/Foodie-Express/utils"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// GET /api/restaurants/:id/reviews
func (h *ReviewController) List(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	reviews, err := h.Svc.ListForRestaurant(uint(restID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"reviews": reviews})
}

// POST /api/restaurants/:id/reviews
func (h *ReviewController) Create(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := h.Svc.Create(utils.CurrentUserID(c), uint(restID), req.Rating, req.Comment)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rev)
}
