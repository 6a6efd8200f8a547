package services

import "errors"

// Service-level failures the controllers map onto the HTTP error taxonomy.
// Messages match the public API contract.
var (
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidLogin  = errors.New("invalid credentials")

	ErrInvalidResetToken = errors.New("invalid or expired token")
	ErrInvalidUID        = errors.New("invalid uid")

	ErrInvalidOwner      = errors.New("invalid owner_id")
	ErrOwnerNotShopOwner = errors.New("store owner must have the shop_owner role")
	ErrInvalidStoreType  = errors.New("Invalid store type")
	ErrStoreNameTaken    = errors.New("a store with this name already exists")
	ErrStoreNotFound     = errors.New("Store not found for the given store_id")

	ErrRestaurantExists    = errors.New("A Restaurant already exists for the given store_id")
	ErrRestaurantNameTaken = errors.New("a restaurant with this name already exists")
	ErrRestaurantNotFound  = errors.New("Restaurant not found for the given store_id")

	ErrMenuNotFound     = errors.New("Menu not found for the given store_id and menu_id")
	ErrMenuItemNotFound = errors.New("MenuItem not found")

	ErrInvalidUser        = errors.New("Invalid user_id")
	ErrInvalidOrderStatus = errors.New("Invalid order_status")
	ErrOrderNotFound      = errors.New("Order not found for the given order_id")
	ErrOrderItemNotFound  = errors.New("OrderItem not found with the given id")

	ErrCartEmpty        = errors.New("Cart not found for the given user_id")
	ErrCartItemNotFound = errors.New("CartItem not found")
)
