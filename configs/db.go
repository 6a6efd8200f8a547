package configs

import (
	"github.com/Priyans1727C/backend/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// SetDB swaps the process-wide handle; used by tests.
func SetDB(d *gorm.DB) {
	db = d
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{}, &entity.UserProfile{}, &entity.PasswordResetToken{},
		&entity.Store{}, &entity.Restaurant{},
		&entity.Menu{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.CartItem{},
	)
}
