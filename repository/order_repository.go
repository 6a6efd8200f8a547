package repository

import (
	"github.com/Priyans1727C/backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// FindInRestaurant scopes the lookup to the restaurant; an order under a
// different restaurant is a not-found, not a mismatch.
func (r *OrderRepository) FindInRestaurant(restaurantID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restaurantID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Updates(updates).Error
}

func (r *OrderRepository) DeleteCascade(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, orderID).Error
	})
}

// ---------------- Order items ----------------

func (r *OrderRepository) ListItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderRepository) FindItemInOrder(orderID, orderItemID uint) (*entity.OrderItem, error) {
	var item entity.OrderItem
	err := r.DB.Where("id = ? AND order_id = ?", orderItemID, orderID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderRepository) CreateItem(item *entity.OrderItem) error {
	return r.DB.Create(item).Error
}

func (r *OrderRepository) UpdateItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.OrderItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *OrderRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&entity.OrderItem{}, id).Error
}
