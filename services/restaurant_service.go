package services

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	restRepo  *repository.RestaurantRepository
	storeRepo *repository.StoreRepository
}

func NewRestaurantService(restRepo *repository.RestaurantRepository, storeRepo *repository.StoreRepository) *RestaurantService {
	return &RestaurantService{restRepo: restRepo, storeRepo: storeRepo}
}

func (s *RestaurantService) GetByStore(storeID uint) (*entity.Restaurant, error) {
	rest, err := s.restRepo.FindByStoreID(storeID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrRestaurantNotFound
	}
	return rest, err
}

// Create enforces exactly one restaurant per store and a unique name.
func (s *RestaurantService) Create(rest *entity.Restaurant) error {
	if _, err := s.storeRepo.FindByID(rest.StoreID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrStoreNotFound
		}
		return err
	}

	exists, err := s.restRepo.ExistsForStore(rest.StoreID)
	if err != nil {
		return err
	}
	if exists {
		return ErrRestaurantExists
	}

	count, err := s.restRepo.CountByName(rest.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRestaurantNameTaken
	}

	return s.restRepo.Create(rest)
}

func (s *RestaurantService) Update(storeID uint, updates map[string]any) (*entity.Restaurant, error) {
	rest, err := s.GetByStore(storeID)
	if err != nil {
		return nil, err
	}
	if name, ok := updates["name"].(string); ok && name != rest.Name {
		count, err := s.restRepo.CountByName(name)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrRestaurantNameTaken
		}
	}
	if err := s.restRepo.Update(rest.ID, updates); err != nil {
		return nil, err
	}
	return s.restRepo.FindByStoreID(storeID)
}

// Delete removes the restaurant and everything scoped under it.
func (s *RestaurantService) Delete(storeID uint) error {
	rest, err := s.GetByStore(storeID)
	if err != nil {
		return err
	}
	return s.restRepo.DeleteCascade(rest.ID)
}
