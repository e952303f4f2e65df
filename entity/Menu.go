package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `gorm:"type:decimal(10,2)" json:"price"`
	// no column default: gorm drops zero values for defaulted columns on
	// insert, which would turn an explicit false back into true
	IsAvailable bool `json:"isAvailable"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// category removal keeps the item, drops the grouping
	CategoryID *uint     `json:"categoryId"`
	Category   *Category `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	OrderItems []OrderItem `json:"-"`
}
