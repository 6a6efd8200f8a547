package entity

import (
	"gorm.io/gorm"
)

// User roles. Role is fixed at creation time.
const (
	RoleCustomer  = "customer"
	RoleShopOwner = "shop_owner"
	RoleAdmin     = "admin"
)

// Account statuses.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"index" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`
	Status   string `gorm:"not null;default:active" json:"status"`

	// Relations, preload only when needed
	Profile   *UserProfile `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Stores    []Store      `gorm:"foreignKey:OwnerID" json:"-"`
	Orders    []Order      `json:"-"`
	CartItems []CartItem   `json:"-"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleShopOwner, RoleAdmin:
		return true
	}
	return false
}
