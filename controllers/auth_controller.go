package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/resp"
	"github.com/mohanwork1803-cell/Foodie-Express/services"
	"github.com/mohanwork1803-cell/Foodie-Express/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type registerReq struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     entity.Role `json:"role"`
}

// POST /api/auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"user": user})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": user})
}
