package repository

import (
	"github.com/Priyans1727C/backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindByStoreID resolves the restaurant owned by a store. Every scoped
// catalog and order lookup starts here.
func (r *RestaurantRepository) FindByStoreID(storeID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("store_id = ?", storeID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) ExistsForStore(storeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("store_id = ?", storeID).Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCascade removes the restaurant with its menus, menu items, orders
// and order items, in one transaction.
func (r *RestaurantRepository) DeleteCascade(restaurantID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return deleteRestaurantTree(tx, restaurantID)
	})
}
