package entity

import (
	"time"

	"gorm.io/gorm"
)

// PasswordResetToken is single-use and time-bound. A token is dead once
// UsedAt is set or ExpiresAt has passed.
type PasswordResetToken struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"userId"`
	User      User   `json:"-"`
	Token     string `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time  `json:"expiresAt"`
	UsedAt    *time.Time `json:"-"`
}
