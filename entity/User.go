package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     Role   `gorm:"size:20;not null;default:customer" json:"role"`

	// Relations — preload only when needed
	RestaurantsOwned []Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
	Orders           []Order      `json:"-"`
	Reviews          []Review     `json:"-"`
	DeliveryOrders   []Order      `gorm:"foreignKey:AssignedAgentID" json:"-"`
	Cart             *Cart        `json:"-"`
}
