package entity

import (
	"gorm.io/gorm"
)

// Store types.
const (
	StoreTypeRestaurants = "restaurants"
	StoreTypeGrocery     = "grocery"
	StoreTypeGarment     = "garment"
	StoreTypeElectronics = "electronics"
	StoreTypeFurniture   = "furniture"
	StoreTypeBooks       = "books"
	StoreTypeOther       = "other"
)

// Store is the top-level tenant entity. The owner must hold the
// shop_owner role.
type Store struct {
	gorm.Model
	OwnerID uint `gorm:"index;not null" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Type        string `gorm:"not null;default:other" json:"type"`
	Description string `json:"description"`

	Restaurant *Restaurant `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CartItems  []CartItem  `json:"-"`
}

func IsValidStoreType(t string) bool {
	switch t {
	case StoreTypeRestaurants, StoreTypeGrocery, StoreTypeGarment,
		StoreTypeElectronics, StoreTypeFurniture, StoreTypeBooks, StoreTypeOther:
		return true
	}
	return false
}
