package entity

import (
	"gorm.io/gorm"
)

// Order statuses.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

type Order struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	DeliveryAddress string  `json:"deliveryAddress"`
	OrderStatus     string  `gorm:"not null;default:Pending" json:"orderStatus"`
	TotalAmount     float64 `gorm:"not null" json:"totalAmount"`
	PaymentMethod   string  `json:"paymentMethod"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
