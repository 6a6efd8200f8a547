package configs

import (
	"log"

	"github.com/Priyans1727C/backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account if one is configured and absent.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
