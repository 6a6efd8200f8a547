package services

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/repository"

	"gorm.io/gorm"
)

// CartService manages a user's pending selections. Rows are never merged:
// adding the same item twice yields two rows.
type CartService struct {
	cartRepo *repository.CartRepository
	menuRepo *repository.MenuRepository
	userRepo *repository.UserRepository
}

func NewCartService(cartRepo *repository.CartRepository, menuRepo *repository.MenuRepository, userRepo *repository.UserRepository) *CartService {
	return &CartService{cartRepo: cartRepo, menuRepo: menuRepo, userRepo: userRepo}
}

func (s *CartService) List(userID uint) ([]entity.CartItem, error) {
	rows, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrCartEmpty
	}
	return rows, nil
}

// Add requires the user to exist and the item to resolve through the
// store's restaurant chain.
func (s *CartService) Add(userID, storeID, menuItemID uint, quantity int) (*entity.CartItem, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, ErrInvalidUser
	}
	if _, err := s.menuRepo.FindItemInStore(storeID, menuItemID); err != nil {
		return nil, ErrMenuItemNotFound
	}

	row := &entity.CartItem{
		UserID:     userID,
		StoreID:    storeID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
	}
	if err := s.cartRepo.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *CartService) Update(userID, cartItemID uint, updates map[string]any) (*entity.CartItem, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, ErrInvalidUser
	}
	row, err := s.cartRepo.FindForUser(userID, cartItemID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Update(row.ID, updates); err != nil {
		return nil, err
	}
	return s.cartRepo.FindForUser(userID, row.ID)
}

func (s *CartService) Remove(userID, cartItemID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrInvalidUser
	}
	row, err := s.cartRepo.FindForUser(userID, cartItemID)
	if err == gorm.ErrRecordNotFound {
		return ErrCartItemNotFound
	}
	if err != nil {
		return err
	}
	return s.cartRepo.Delete(row.ID)
}
