package services

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/repository"

	"gorm.io/gorm"
)

type StoreService struct {
	storeRepo *repository.StoreRepository
	userRepo  *repository.UserRepository
}

func NewStoreService(storeRepo *repository.StoreRepository, userRepo *repository.UserRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo, userRepo: userRepo}
}

func (s *StoreService) Get(storeID uint) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(storeID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrStoreNotFound
	}
	return store, err
}

// Create rejects owners that do not hold the shop_owner role and
// duplicate store names.
func (s *StoreService) Create(store *entity.Store) error {
	if !entity.IsValidStoreType(store.Type) {
		return ErrInvalidStoreType
	}
	owner, err := s.userRepo.FindByID(store.OwnerID)
	if err != nil {
		return ErrInvalidOwner
	}
	if owner.Role != entity.RoleShopOwner {
		return ErrOwnerNotShopOwner
	}

	count, err := s.storeRepo.CountByName(store.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrStoreNameTaken
	}

	return s.storeRepo.Create(store)
}

func (s *StoreService) Update(storeID uint, updates map[string]any) (*entity.Store, error) {
	if t, ok := updates["type"].(string); ok && !entity.IsValidStoreType(t) {
		return nil, ErrInvalidStoreType
	}
	current, err := s.Get(storeID)
	if err != nil {
		return nil, err
	}
	if name, ok := updates["name"].(string); ok && name != current.Name {
		count, err := s.storeRepo.CountByName(name)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrStoreNameTaken
		}
	}
	if err := s.storeRepo.Update(storeID, updates); err != nil {
		return nil, err
	}
	return s.storeRepo.FindByID(storeID)
}

func (s *StoreService) Delete(storeID uint) error {
	if _, err := s.Get(storeID); err != nil {
		return err
	}
	return s.storeRepo.DeleteCascade(storeID)
}
