package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"index;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`

	SpecialInstructions string `json:"specialInstructions"`
}
