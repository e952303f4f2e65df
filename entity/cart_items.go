package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:idx_cart_menu_item" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_menu_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `json:"quantity"`

	// PriceSnapshot is captured when the line is first added and never
	// refreshed from the catalog, even when quantity changes later.
	PriceSnapshot Money `gorm:"type:decimal(10,2)" json:"priceSnapshot"`
}

func (ci *CartItem) Subtotal() Money {
	return ci.PriceSnapshot.MulInt(ci.Quantity)
}
