package services

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/repository"

	"gorm.io/gorm"
)

// MenuService covers menus and menu items. Every operation resolves the
// full ownership chain first: store → restaurant → menu (→ item). A menu
// that exists under a different store is reported as not found.
type MenuService struct {
	menuRepo *repository.MenuRepository
	restRepo *repository.RestaurantRepository
}

func NewMenuService(menuRepo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo, restRepo: restRepo}
}

func (s *MenuService) resolveRestaurant(storeID uint) (*entity.Restaurant, error) {
	rest, err := s.restRepo.FindByStoreID(storeID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrRestaurantNotFound
	}
	return rest, err
}

func (s *MenuService) resolveMenu(storeID, menuID uint) (*entity.Menu, error) {
	rest, err := s.resolveRestaurant(storeID)
	if err != nil {
		return nil, err
	}
	menu, err := s.menuRepo.FindInRestaurant(rest.ID, menuID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrMenuNotFound
	}
	return menu, err
}

// ---------------- Menus ----------------

func (s *MenuService) List(storeID uint) ([]entity.Menu, error) {
	rest, err := s.resolveRestaurant(storeID)
	if err != nil {
		return nil, err
	}
	return s.menuRepo.FindByRestaurant(rest.ID)
}

func (s *MenuService) Create(storeID uint, menu *entity.Menu) error {
	rest, err := s.resolveRestaurant(storeID)
	if err != nil {
		return err
	}
	menu.RestaurantID = rest.ID
	return s.menuRepo.Create(menu)
}

func (s *MenuService) Update(storeID, menuID uint, updates map[string]any) (*entity.Menu, error) {
	menu, err := s.resolveMenu(storeID, menuID)
	if err != nil {
		return nil, err
	}
	if err := s.menuRepo.Update(menu.ID, updates); err != nil {
		return nil, err
	}
	return s.menuRepo.FindInRestaurant(menu.RestaurantID, menu.ID)
}

func (s *MenuService) Delete(storeID, menuID uint) error {
	menu, err := s.resolveMenu(storeID, menuID)
	if err != nil {
		return err
	}
	return s.menuRepo.DeleteCascade(menu.ID)
}

// ---------------- Menu items ----------------

func (s *MenuService) ListItems(storeID, menuID uint) ([]entity.MenuItem, error) {
	menu, err := s.resolveMenu(storeID, menuID)
	if err != nil {
		return nil, err
	}
	return s.menuRepo.FindItemsByMenu(menu.ID)
}

func (s *MenuService) CreateItem(storeID, menuID uint, item *entity.MenuItem) error {
	menu, err := s.resolveMenu(storeID, menuID)
	if err != nil {
		return err
	}
	item.MenuID = menu.ID
	return s.menuRepo.CreateItem(item)
}

func (s *MenuService) UpdateItem(storeID, menuID, itemID uint, updates map[string]any) (*entity.MenuItem, error) {
	menu, err := s.resolveMenu(storeID, menuID)
	if err != nil {
		return nil, err
	}
	item, err := s.menuRepo.FindItemInMenu(menu.ID, itemID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.menuRepo.UpdateItem(item.ID, updates); err != nil {
		return nil, err
	}
	return s.menuRepo.FindItemInMenu(menu.ID, item.ID)
}

func (s *MenuService) DeleteItem(storeID, menuID, itemID uint) error {
	menu, err := s.resolveMenu(storeID, menuID)
	if err != nil {
		return err
	}
	item, err := s.menuRepo.FindItemInMenu(menu.ID, itemID)
	if err == gorm.ErrRecordNotFound {
		return ErrMenuItemNotFound
	}
	if err != nil {
		return err
	}
	return s.menuRepo.DeleteItemCascade(item.ID)
}
