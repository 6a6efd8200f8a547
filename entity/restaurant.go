package entity

import (
	"gorm.io/gorm"
)

// Restaurant is the 1:1 specialization of a Store holding location and
// opening-hours detail.
type Restaurant struct {
	gorm.Model
	StoreID uint  `gorm:"uniqueIndex;not null" json:"storeId"`
	Store   Store `json:"-"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`

	Phone string `json:"phone"`
	Email string `json:"email"`

	OpeningTime string `json:"openingTime"` // "HH:MM"
	ClosingTime string `json:"closingTime"` // "HH:MM"

	IsActive bool `gorm:"default:true" json:"isActive"`

	Menus  []Menu  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
