package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(entity.Role); ok {
			return r
		}
	}
	return ""
}
