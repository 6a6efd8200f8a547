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

func TestMenuCRUD(t *testing.T) {
	router, db := setupTestRouter(t)
	owner := createUser(t, db, "mowner1", entity.RoleShopOwner)
	store := createStore(t, db, owner, "Curry Lane")
	createRestaurant(t, db, store, "Curry Lane Kitchen")

	t.Run("create", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/menu/", map[string]any{
			"store_id":      store.ID,
			"category_name": "Starters",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Starters", decodeBody(t, rec)["categoryName"])
	})

	t.Run("create for store without restaurant", func(t *testing.T) {
		bare := createStore(t, db, owner, "No Kitchen Yet")
		rec := performRequest(router, http.MethodPost, "/restaurant/menu/", map[string]any{
			"store_id":      bare.ID,
			"category_name": "Ghost",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, fmt.Sprintf("/restaurant/menu/?store_id=%d", store.ID), nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var menus []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menus))
		assert.Len(t, menus, 1)
	})

	t.Run("update", func(t *testing.T) {
		var menu entity.Menu
		require.NoError(t, db.Where("category_name = ?", "Starters").First(&menu).Error)

		rec := performRequest(router, http.MethodPut, "/restaurant/menu/", map[string]any{
			"store_id":      store.ID,
			"menu_id":       menu.ID,
			"category_name": "Appetisers",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Appetisers", decodeBody(t, rec)["categoryName"])
	})

	t.Run("update menu of another store gives 404", func(t *testing.T) {
		other := createStore(t, db, owner, "Other Place")
		otherRest := createRestaurant(t, db, other, "Other Place Kitchen")
		otherMenu := createMenu(t, db, otherRest, "Desserts")

		rec := performRequest(router, http.MethodPut, "/restaurant/menu/", map[string]any{
			"store_id":      store.ID,
			"menu_id":       otherMenu.ID,
			"category_name": "Hijacked",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete cascades items", func(t *testing.T) {
		var menu entity.Menu
		require.NoError(t, db.Where("category_name = ?", "Appetisers").First(&menu).Error)
		createMenuItem(t, db, &menu, "Samosa", 40)

		rec := performRequest(router, http.MethodDelete, fmt.Sprintf("/restaurant/menu/?store_id=%d&menu_id=%d", store.ID, menu.ID), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		var count int64
		db.Model(&entity.MenuItem{}).Where("menu_id = ?", menu.ID).Count(&count)
		assert.Zero(t, count)
	})
}

func TestMenuItemCRUD(t *testing.T) {
	router, db := setupTestRouter(t)
	owner := createUser(t, db, "mowner2", entity.RoleShopOwner)
	store := createStore(t, db, owner, "Pizza Yard")
	rest := createRestaurant(t, db, store, "Pizza Yard Kitchen")
	menu := createMenu(t, db, rest, "Pizzas")

	t.Run("create", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/menu/item/", map[string]any{
			"store_id": store.ID,
			"menu_id":  menu.ID,
			"name":     "Margherita",
			"price":    250,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Margherita", body["name"])
		assert.Equal(t, true, body["isAvailable"])
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/menu/item/", map[string]any{
			"store_id": store.ID,
			"menu_id":  menu.ID,
			"name":     "Free Lunch",
			"price":    -5,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list items under menu of another store gives 404", func(t *testing.T) {
		other := createStore(t, db, owner, "Burger Yard")
		otherRest := createRestaurant(t, db, other, "Burger Yard Kitchen")
		otherMenu := createMenu(t, db, otherRest, "Burgers")

		rec := performRequest(router, http.MethodGet, fmt.Sprintf("/restaurant/menu/item/?store_id=%d&menu_id=%d", store.ID, otherMenu.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, fmt.Sprintf("/restaurant/menu/item/?store_id=%d&menu_id=%d", store.ID, menu.ID), nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 1)
	})

	t.Run("update", func(t *testing.T) {
		var item entity.MenuItem
		require.NoError(t, db.Where("name = ?", "Margherita").First(&item).Error)

		rec := performRequest(router, http.MethodPut, "/restaurant/menu/item/", map[string]any{
			"store_id":     store.ID,
			"menu_id":      menu.ID,
			"item_id":      item.ID,
			"price":        275,
			"is_available": false,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, 275.0, body["price"])
		assert.Equal(t, false, body["isAvailable"])
		assert.Equal(t, "Margherita", body["name"])
	})

	t.Run("delete cascades order items and cart rows", func(t *testing.T) {
		item := createMenuItem(t, db, menu, "Pepperoni", 320)
		order := createOrder(t, db, rest, owner, 320)
		db.Create(&entity.OrderItem{OrderID: order.ID, MenuItemID: item.ID, Quantity: 1, Price: 320})
		db.Create(&entity.CartItem{UserID: owner.ID, StoreID: store.ID, MenuItemID: item.ID, Quantity: 1})

		rec := performRequest(router, http.MethodDelete, fmt.Sprintf("/restaurant/menu/item/?store_id=%d&menu_id=%d&item_id=%d", store.ID, menu.ID, item.ID), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		var count int64
		db.Model(&entity.OrderItem{}).Where("menu_item_id = ?", item.ID).Count(&count)
		assert.Zero(t, count)
		db.Model(&entity.CartItem{}).Where("menu_item_id = ?", item.ID).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("delete unknown item", func(t *testing.T) {
		rec := performRequest(router, http.MethodDelete, fmt.Sprintf("/restaurant/menu/item/?store_id=%d&menu_id=%d&item_id=4242", store.ID, menu.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
