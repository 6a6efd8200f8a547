package services

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/repository"

	"gorm.io/gorm"
)

// OrderService covers orders and order items. Orders are scoped to a
// restaurant (resolved by store id) and a user; items additionally
// reference a menu item by id.
//
// TotalAmount and item Price are persisted as submitted; see DESIGN.md for
// why they are not derived from the catalog.
type OrderService struct {
	orderRepo *repository.OrderRepository
	restRepo  *repository.RestaurantRepository
	menuRepo  *repository.MenuRepository
	userRepo  *repository.UserRepository
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	menuRepo *repository.MenuRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{orderRepo: orderRepo, restRepo: restRepo, menuRepo: menuRepo, userRepo: userRepo}
}

func (s *OrderService) resolveRestaurant(storeID uint) (*entity.Restaurant, error) {
	rest, err := s.restRepo.FindByStoreID(storeID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrRestaurantNotFound
	}
	return rest, err
}

func (s *OrderService) resolveOrder(storeID, orderID uint) (*entity.Order, error) {
	rest, err := s.resolveRestaurant(storeID)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindInRestaurant(rest.ID, orderID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// ---------------- Orders ----------------

func (s *OrderService) Get(storeID, orderID uint) (*entity.Order, error) {
	return s.resolveOrder(storeID, orderID)
}

func (s *OrderService) Create(storeID, userID uint, order *entity.Order) error {
	if order.OrderStatus != "" && !entity.IsValidOrderStatus(order.OrderStatus) {
		return ErrInvalidOrderStatus
	}
	rest, err := s.resolveRestaurant(storeID)
	if err != nil {
		return err
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrInvalidUser
	}

	order.RestaurantID = rest.ID
	order.UserID = userID
	if order.OrderStatus == "" {
		order.OrderStatus = entity.OrderStatusPending
	}
	return s.orderRepo.Create(order)
}

func (s *OrderService) Update(storeID, orderID, userID uint, updates map[string]any) (*entity.Order, error) {
	if st, ok := updates["order_status"].(string); ok && !entity.IsValidOrderStatus(st) {
		return nil, ErrInvalidOrderStatus
	}
	order, err := s.resolveOrder(storeID, orderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, ErrInvalidUser
	}
	if err := s.orderRepo.Update(order.ID, updates); err != nil {
		return nil, err
	}
	return s.orderRepo.FindInRestaurant(order.RestaurantID, order.ID)
}

// Delete removes the order and all of its items.
func (s *OrderService) Delete(storeID, orderID, userID uint) error {
	order, err := s.resolveOrder(storeID, orderID)
	if err != nil {
		return err
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrInvalidUser
	}
	return s.orderRepo.DeleteCascade(order.ID)
}

// ---------------- Order items ----------------

func (s *OrderService) ListItems(storeID, orderID uint) ([]entity.OrderItem, error) {
	order, err := s.resolveOrder(storeID, orderID)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.ListItems(order.ID)
}

func (s *OrderService) CreateItem(storeID, orderID, menuItemID uint, item *entity.OrderItem) error {
	order, err := s.resolveOrder(storeID, orderID)
	if err != nil {
		return err
	}
	if _, err := s.menuRepo.FindItemByID(menuItemID); err != nil {
		return ErrMenuItemNotFound
	}

	item.OrderID = order.ID
	item.MenuItemID = menuItemID
	return s.orderRepo.CreateItem(item)
}

func (s *OrderService) UpdateItem(storeID, orderID, orderItemID uint, updates map[string]any) (*entity.OrderItem, error) {
	order, err := s.resolveOrder(storeID, orderID)
	if err != nil {
		return nil, err
	}
	item, err := s.orderRepo.FindItemInOrder(order.ID, orderItemID)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrOrderItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateItem(item.ID, updates); err != nil {
		return nil, err
	}
	return s.orderRepo.FindItemInOrder(order.ID, item.ID)
}

func (s *OrderService) DeleteItem(storeID, orderID, orderItemID uint) error {
	order, err := s.resolveOrder(storeID, orderID)
	if err != nil {
		return err
	}
	item, err := s.orderRepo.FindItemInOrder(order.ID, orderItemID)
	if err == gorm.ErrRecordNotFound {
		return ErrOrderItemNotFound
	}
	if err != nil {
		return err
	}
	return s.orderRepo.DeleteItem(item.ID)
}
