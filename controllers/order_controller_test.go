package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Priyans1727C/backend/entity"
)

func TestOrderCRUD(t *testing.T) {
	router, db := setupTestRouter(t)
	owner := createUser(t, db, "oowner1", entity.RoleShopOwner)
	customer := createUser(t, db, "ocust1", entity.RoleCustomer)
	store := createStore(t, db, owner, "Wok Stop")
	createRestaurant(t, db, store, "Wok Stop Kitchen")

	t.Run("create defaults to Pending", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/order/", map[string]any{
			"store_id":     store.ID,
			"user_id":      customer.ID,
			"total_amount": 499.5,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Pending", body["orderStatus"])
		assert.Equal(t, 499.5, body["totalAmount"])
	})

	t.Run("unknown user gives 400", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/order/", map[string]any{
			"store_id":     store.ID,
			"user_id":      9999,
			"total_amount": 100,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid user_id")
	})

	t.Run("zero total is rejected", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/order/", map[string]any{
			"store_id":     store.ID,
			"user_id":      customer.ID,
			"total_amount": 0,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad status is rejected", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/order/", map[string]any{
			"store_id":     store.ID,
			"user_id":      customer.ID,
			"total_amount": 100,
			"order_status": "Teleported",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get", func(t *testing.T) {
		var order entity.Order
		require.NoError(t, db.Where("user_id = ?", customer.ID).First(&order).Error)

		rec := performRequest(router, http.MethodGet, fmt.Sprintf("/restaurant/order/?store_id=%d&order_id=%d", store.ID, order.ID), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 499.5, decodeBody(t, rec)["totalAmount"])
	})

	t.Run("get order of another store gives 404", func(t *testing.T) {
		other := createStore(t, db, owner, "Taco Stop")
		createRestaurant(t, db, other, "Taco Stop Kitchen")
		var order entity.Order
		require.NoError(t, db.Where("user_id = ?", customer.ID).First(&order).Error)

		rec := performRequest(router, http.MethodGet, fmt.Sprintf("/restaurant/order/?store_id=%d&order_id=%d", other.ID, order.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update status", func(t *testing.T) {
		var order entity.Order
		require.NoError(t, db.Where("user_id = ?", customer.ID).First(&order).Error)

		rec := performRequest(router, http.MethodPut, "/restaurant/order/", map[string]any{
			"store_id":     store.ID,
			"order_id":     order.ID,
			"user_id":      customer.ID,
			"order_status": "Delivered",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Delivered", body["orderStatus"])
		assert.Equal(t, 499.5, body["totalAmount"])
	})

	t.Run("delete cascades order items", func(t *testing.T) {
		var rest entity.Restaurant
		require.NoError(t, db.Where("store_id = ?", store.ID).First(&rest).Error)
		menu := createMenu(t, db, &rest, "Mains")
		item := createMenuItem(t, db, menu, "Fried Rice", 150)

		var order entity.Order
		require.NoError(t, db.Where("user_id = ?", customer.ID).First(&order).Error)
		db.Create(&entity.OrderItem{OrderID: order.ID, MenuItemID: item.ID, Quantity: 2, Price: 150})

		rec := performRequest(router, http.MethodDelete, fmt.Sprintf("/restaurant/order/?store_id=%d&order_id=%d&user_id=%d", store.ID, order.ID, customer.ID), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		var count int64
		db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&count)
		assert.Zero(t, count)
	})
}

func TestOrderItemCRUD(t *testing.T) {
	router, db := setupTestRouter(t)
	owner := createUser(t, db, "oowner2", entity.RoleShopOwner)
	customer := createUser(t, db, "ocust2", entity.RoleCustomer)
	store := createStore(t, db, owner, "Grill House")
	rest := createRestaurant(t, db, store, "Grill House Kitchen")
	menu := createMenu(t, db, rest, "Grills")
	item := createMenuItem(t, db, menu, "Kebab", 200)
	order := createOrder(t, db, rest, customer, 200)

	t.Run("create keeps submitted price", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/order/item/", map[string]any{
			"store_id": store.ID,
			"order_id": order.ID,
			"item_id":  item.ID,
			"quantity": 2,
			"price":    185,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 185.0, decodeBody(t, rec)["price"])
	})

	t.Run("unknown menu item gives 404", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/order/item/", map[string]any{
			"store_id": store.ID,
			"order_id": order.ID,
			"item_id":  9999,
			"quantity": 1,
			"price":    10,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/order/item/", map[string]any{
			"store_id": store.ID,
			"order_id": order.ID,
			"item_id":  item.ID,
			"quantity": 0,
			"price":    10,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, fmt.Sprintf("/restaurant/order/item/?store_id=%d&order_id=%d", store.ID, order.ID), nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 1)
	})

	t.Run("update", func(t *testing.T) {
		var row entity.OrderItem
		require.NoError(t, db.Where("order_id = ?", order.ID).First(&row).Error)

		rec := performRequest(router, http.MethodPut, "/restaurant/order/item/", map[string]any{
			"store_id":             store.ID,
			"order_id":             order.ID,
			"item_id":              row.ID,
			"quantity":             3,
			"special_instructions": "extra spicy",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, 3.0, body["quantity"])
		assert.Equal(t, "extra spicy", body["specialInstructions"])
	})

	t.Run("delete", func(t *testing.T) {
		var row entity.OrderItem
		require.NoError(t, db.Where("order_id = ?", order.ID).First(&row).Error)

		rec := performRequest(router, http.MethodDelete, fmt.Sprintf("/restaurant/order/item/?store_id=%d&order_id=%d&item_id=%d", store.ID, order.ID, row.ID), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/restaurant/order/item/?store_id=%d&order_id=%d&item_id=%d", store.ID, order.ID, row.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderUnknownStoreAnswersNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	// store resolution comes before the user check
	rec := performRequest(router, http.MethodPut, "/restaurant/order/", map[string]any{
		"store_id":     4242,
		"order_id":     1,
		"user_id":      9999,
		"order_status": "Delivered",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Restaurant not found")

	rec = performRequest(router, http.MethodDelete, "/restaurant/order/?store_id=4242&order_id=1&user_id=9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Restaurant not found")
}

func TestOrderUpdateRejectsUnknownStatus(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodPut, "/restaurant/order/", map[string]any{
		"store_id":     4242,
		"order_id":     1,
		"user_id":      1,
		"order_status": "Teleported",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid order_status")
}
