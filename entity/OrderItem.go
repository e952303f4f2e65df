package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only for order detail

	Quantity int `json:"quantity"`

	// Price is copied from the cart line's snapshot and never changes.
	Price Money `gorm:"type:decimal(10,2)" json:"price"`
}

func (oi *OrderItem) Subtotal() Money {
	return oi.Price.MulInt(oi.Quantity)
}
