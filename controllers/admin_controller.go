package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mohanwork1803-cell/Foodie-Express/pkg/resp"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

// AdminController exposes the oversight listings. The route group is gated to
// the admin role, so handlers read straight from the repositories.
type AdminController struct {
	Users       *repository.UserRepository
	Restaurants *repository.RestaurantRepository
	Orders      *repository.OrderRepository
}

func NewAdminController(
	users *repository.UserRepository,
	restaurants *repository.RestaurantRepository,
	orders *repository.OrderRepository,
) *AdminController {
	return &AdminController{Users: users, Restaurants: restaurants, Orders: orders}
}

// GET /api/admin/users
func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

// GET /api/admin/restaurants
func (h *AdminController) ListRestaurants(c *gin.Context) {
	restaurants, err := h.Restaurants.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": restaurants})
}

// GET /api/admin/orders
func (h *AdminController) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}
