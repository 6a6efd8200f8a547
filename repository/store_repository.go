package repository

import (
	"github.com/Priyans1727C/backend/entity"

	"gorm.io/gorm"
)

type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

func (r *StoreRepository) FindByID(id uint) (*entity.Store, error) {
	var s entity.Store
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Store{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *StoreRepository) Create(s *entity.Store) error {
	return r.DB.Create(s).Error
}

func (r *StoreRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Store{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCascade removes the store with its restaurant chain and any cart
// rows pointing at it, in one transaction.
func (r *StoreRepository) DeleteCascade(storeID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var rest entity.Restaurant
		err := tx.Where("store_id = ?", storeID).First(&rest).Error
		if err == nil {
			if err := deleteRestaurantTree(tx, rest.ID); err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := tx.Where("store_id = ?", storeID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Store{}, storeID).Error
	})
}

// deleteRestaurantTree removes a restaurant with its menus, menu items and
// orders (with their order items). Shared by store and restaurant deletes.
func deleteRestaurantTree(tx *gorm.DB, restaurantID uint) error {
	menuIDs := tx.Model(&entity.Menu{}).Select("id").Where("restaurant_id = ?", restaurantID)
	if err := tx.Where("menu_id IN (?)", menuIDs).Delete(&entity.MenuItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&entity.Menu{}).Error; err != nil {
		return err
	}

	orderIDs := tx.Model(&entity.Order{}).Select("id").Where("restaurant_id = ?", restaurantID)
	if err := tx.Where("order_id IN (?)", orderIDs).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&entity.Order{}).Error; err != nil {
		return err
	}

	return tx.Delete(&entity.Restaurant{}, restaurantID).Error
}
