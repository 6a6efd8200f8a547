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

func TestCart(t *testing.T) {
	router, db := setupTestRouter(t)
	owner := createUser(t, db, "cowner1", entity.RoleShopOwner)
	customer := createUser(t, db, "ccust1", entity.RoleCustomer)
	store := createStore(t, db, owner, "Juice Corner")
	rest := createRestaurant(t, db, store, "Juice Corner Kitchen")
	menu := createMenu(t, db, rest, "Juices")
	item := createMenuItem(t, db, menu, "Mango Shake", 90)

	addPayload := map[string]any{
		"user_id":  customer.ID,
		"store_id": store.ID,
		"item_id":  item.ID,
		"quantity": 1,
	}

	t.Run("empty cart gives 404", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, fmt.Sprintf("/restaurant/cart/?user_id=%d", customer.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Cart not found")
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/cart/", map[string]any{
			"user_id":  customer.ID,
			"store_id": store.ID,
			"item_id":  item.ID,
			"quantity": 0,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user gives 400", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/cart/", map[string]any{
			"user_id":  9999,
			"store_id": store.ID,
			"item_id":  item.ID,
			"quantity": 1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("item not under store gives 404", func(t *testing.T) {
		other := createStore(t, db, owner, "Tea Corner")
		createRestaurant(t, db, other, "Tea Corner Kitchen")

		rec := performRequest(router, http.MethodPost, "/restaurant/cart/", map[string]any{
			"user_id":  customer.ID,
			"store_id": other.ID,
			"item_id":  item.ID,
			"quantity": 1,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("repeated add creates distinct rows", func(t *testing.T) {
		rec := performRequest(router, http.MethodPost, "/restaurant/cart/", addPayload)
		assert.Equal(t, http.StatusCreated, rec.Code)
		rec = performRequest(router, http.MethodPost, "/restaurant/cart/", addPayload)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var count int64
		db.Model(&entity.CartItem{}).Where("user_id = ? AND menu_item_id = ?", customer.ID, item.ID).Count(&count)
		assert.EqualValues(t, 2, count)
	})

	t.Run("list", func(t *testing.T) {
		rec := performRequest(router, http.MethodGet, fmt.Sprintf("/restaurant/cart/?user_id=%d", customer.ID), nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		assert.Len(t, rows, 2)
	})

	t.Run("update quantity", func(t *testing.T) {
		var row entity.CartItem
		require.NoError(t, db.Where("user_id = ?", customer.ID).First(&row).Error)

		rec := performRequest(router, http.MethodPut, "/restaurant/cart/", map[string]any{
			"user_id":      customer.ID,
			"cart_item_id": row.ID,
			"quantity":     5,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5.0, decodeBody(t, rec)["quantity"])
	})

	t.Run("update row of another user gives 404", func(t *testing.T) {
		stranger := createUser(t, db, "ccust2", entity.RoleCustomer)
		var row entity.CartItem
		require.NoError(t, db.Where("user_id = ?", customer.ID).First(&row).Error)

		rec := performRequest(router, http.MethodPut, "/restaurant/cart/", map[string]any{
			"user_id":      stranger.ID,
			"cart_item_id": row.ID,
			"quantity":     2,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("remove", func(t *testing.T) {
		var row entity.CartItem
		require.NoError(t, db.Where("user_id = ?", customer.ID).First(&row).Error)

		rec := performRequest(router, http.MethodDelete, fmt.Sprintf("/restaurant/cart/?user_id=%d&cart_item_id=%d", customer.ID, row.ID), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = performRequest(router, http.MethodDelete, fmt.Sprintf("/restaurant/cart/?user_id=%d&cart_item_id=%d", customer.ID, row.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
