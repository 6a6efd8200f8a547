package repository

import (
	"github.com/Priyans1727C/backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Menus ----------------

func (r *MenuRepository) FindByRestaurant(restaurantID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("restaurant_id = ?", restaurantID).Find(&menus).Error
	return menus, err
}

// FindInRestaurant fails with gorm.ErrRecordNotFound when the menu exists
// but belongs to another restaurant; the mismatch must never leak.
func (r *MenuRepository) FindInRestaurant(restaurantID, menuID uint) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.Where("id = ? AND restaurant_id = ?", menuID, restaurantID).First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) DeleteCascade(menuID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menuID).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Menu{}, menuID).Error
	})
}

// ---------------- Menu items ----------------

func (r *MenuRepository) FindItemsByMenu(menuID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("menu_id = ?", menuID).Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItemInMenu(menuID, itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Where("id = ? AND menu_id = ?", itemID, menuID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) FindItemByID(itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemInStore resolves a menu item through the store's restaurant
// chain: store → restaurant → menu → item.
func (r *MenuRepository) FindItemInStore(storeID, itemID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Joins("JOIN menus ON menus.id = menu_items.menu_id").
		Joins("JOIN restaurants ON restaurants.id = menus.restaurant_id").
		Where("menu_items.id = ? AND restaurants.store_id = ?", itemID, storeID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteItemCascade removes the item together with order and cart rows
// referencing it.
func (r *MenuRepository) DeleteItemCascade(itemID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", itemID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", itemID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuItem{}, itemID).Error
	})
}
