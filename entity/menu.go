package entity

import (
	"gorm.io/gorm"
)

// Menu is a category of items scoped to exactly one restaurant.
type Menu struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CategoryName string `gorm:"not null" json:"categoryName"`

	MenuItems []MenuItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
