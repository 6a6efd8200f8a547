package entity

import (
	"gorm.io/gorm"
)

type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}
