package entity

import (
	"gorm.io/gorm"
)

// Cart is a customer's in-progress selection. One per user, created lazily.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Subtotal sums the line subtotals of the loaded items. Totals are computed on
// every read, never stored.
func (c *Cart) Subtotal() Money {
	var sum Money
	for _, it := range c.Items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

func (c *Cart) Tax() Money {
	return c.Subtotal().MulRate(TaxRate)
}

func (c *Cart) Total() Money {
	return c.Subtotal().Add(c.Tax()).Add(DeliveryFee)
}
