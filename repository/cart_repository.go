package repository

import (
	"github.com/Priyans1727C/backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ListByUser(userID uint) ([]entity.CartItem, error) {
	var rows []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&rows).Error
	return rows, err
}

// Create always inserts a fresh row; rows are never merged by (user, item).
func (r *CartRepository) Create(row *entity.CartItem) error {
	return r.DB.Create(row).Error
}

func (r *CartRepository) FindForUser(userID, cartItemID uint) (*entity.CartItem, error) {
	var row entity.CartItem
	err := r.DB.Where("id = ? AND user_id = ?", cartItemID, userID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CartRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.CartItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CartRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.CartItem{}, id).Error
}
