package entity

import (
	"gorm.io/gorm"
)

// CartItem is one pending selection of a MenuItem under a Store. Rows are
// not deduplicated: adding the same item twice creates two rows.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	StoreID uint  `gorm:"index;not null" json:"storeId"`
	Store   Store `json:"-"`

	MenuItemID uint     `gorm:"index;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
}
