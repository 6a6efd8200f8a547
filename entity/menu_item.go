package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	MenuID uint `gorm:"index;not null" json:"menuId"`
	Menu   Menu `json:"-"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `json:"imageUrl"`

	IsAvailable  bool `gorm:"default:true" json:"isAvailable"`
	IsVegetarian bool `gorm:"default:true" json:"isVegetarian"`

	OrderItems []OrderItem `json:"-"`
	CartItems  []CartItem  `json:"-"`
}
