package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_user_restaurant_review" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"uniqueIndex:idx_user_restaurant_review" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment"`
}
