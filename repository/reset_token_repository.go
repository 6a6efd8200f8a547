package repository

import (
	"time"

	"github.com/Priyans1727C/backend/entity"

	"gorm.io/gorm"
)

type ResetTokenRepository struct {
	DB *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) *ResetTokenRepository {
	return &ResetTokenRepository{DB: db}
}

func (r *ResetTokenRepository) Create(t *entity.PasswordResetToken) error {
	return r.DB.Create(t).Error
}

// FindValid returns the token row only if it belongs to the user, is
// unused and has not expired.
func (r *ResetTokenRepository) FindValid(userID uint, token string) (*entity.PasswordResetToken, error) {
	var t entity.PasswordResetToken
	err := r.DB.
		Where("user_id = ? AND token = ? AND used_at IS NULL AND expires_at > ?", userID, token, time.Now()).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ResetTokenRepository) MarkUsed(tx *gorm.DB, id uint) error {
	now := time.Now()
	return tx.Model(&entity.PasswordResetToken{}).Where("id = ?", id).Update("used_at", now).Error
}

// PurgeDead removes used and expired tokens. Returns rows removed.
func (r *ResetTokenRepository) PurgeDead() (int64, error) {
	res := r.DB.Unscoped().
		Where("used_at IS NOT NULL OR expires_at <= ?", time.Now()).
		Delete(&entity.PasswordResetToken{})
	return res.RowsAffected, res.Error
}
