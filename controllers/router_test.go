package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Priyans1727C/backend/configs"
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/routes"
	"github.com/Priyans1727C/backend/utils"
)

type stubMailer struct{}

func (stubMailer) SendPasswordReset(to, resetURL string) error { return nil }

func testConfig() *configs.Config {
	return &configs.Config{
		JWTSecret:     "test-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    time.Hour,
		ResetTokenTTL: time.Hour,
		FrontendURL:   "http://localhost:3000",
		CookieSecure:  false,
	}
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	// One shared in-memory database per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}

	originalDB := configs.DB()
	configs.SetDB(testDB)
	if err := configs.SetupDatabase(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { configs.SetDB(originalDB) })

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, testDB, testConfig(), stubMailer{})

	return r, testDB
}

func performRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func performAuthedRequest(r *gin.Engine, method, path string, body any, access string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+access)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func performRequestWithCookie(r *gin.Engine, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func encodeUID(id uint) string {
	return utils.EncodeUID(id)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("cannot decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// ---------------- fixtures ----------------

func createUser(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("p12345678"), bcrypt.MinCost)
	u := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Role:     role,
		Status:   entity.StatusActive,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createStore(t *testing.T, db *gorm.DB, owner *entity.User, name string) *entity.Store {
	t.Helper()
	s := &entity.Store{OwnerID: owner.ID, Name: name, Type: entity.StoreTypeRestaurants}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create store: %v", err)
	}
	return s
}

func createRestaurant(t *testing.T, db *gorm.DB, store *entity.Store, name string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		StoreID:     store.ID,
		Name:        name,
		Address:     "1 Main St",
		City:        "Pune",
		State:       "MH",
		Pincode:     "411001",
		OpeningTime: "09:00",
		ClosingTime: "22:00",
		IsActive:    true,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return r
}

func createMenu(t *testing.T, db *gorm.DB, rest *entity.Restaurant, category string) *entity.Menu {
	t.Helper()
	m := &entity.Menu{RestaurantID: rest.ID, CategoryName: category}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create menu: %v", err)
	}
	return m
}

func createMenuItem(t *testing.T, db *gorm.DB, menu *entity.Menu, name string, price float64) *entity.MenuItem {
	t.Helper()
	it := &entity.MenuItem{MenuID: menu.ID, Name: name, Price: price, IsAvailable: true, IsVegetarian: true}
	if err := db.Create(it).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return it
}

func createOrder(t *testing.T, db *gorm.DB, rest *entity.Restaurant, user *entity.User, total float64) *entity.Order {
	t.Helper()
	o := &entity.Order{
		RestaurantID: rest.ID,
		UserID:       user.ID,
		OrderStatus:  entity.OrderStatusPending,
		TotalAmount:  total,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}
