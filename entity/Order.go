package entity

import (
	"gorm.io/gorm"
)

// Order is an immutable-items snapshot of a committed cart. Only Status and
// AssignedAgentID mutate after creation.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TotalAmount   Money         `gorm:"type:decimal(10,2)" json:"totalAmount"`
	PaymentMethod PaymentMethod `gorm:"size:20" json:"paymentMethod"`
	Status        OrderStatus   `gorm:"size:20;default:placed" json:"status"`

	// first claim wins; never reassigned, nulled if the agent account goes
	AssignedAgentID *uint `json:"assignedAgentId"`
	AssignedAgent   *User `gorm:"foreignKey:AssignedAgentID;constraint:OnDelete:SET NULL;" json:"-"`

	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
