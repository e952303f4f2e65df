package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Rating float64 `json:"rating"`
	// no column default, same reason as MenuItem.IsAvailable
	IsActive bool `json:"isActive"`

	OwnerID uint `json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	// deleting a restaurant takes its menu and reviews with it
	MenuItems []MenuItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Reviews   []Review   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Orders    []Order    `json:"-"`
}
