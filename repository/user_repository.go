package repository

import (
	"github.com/Priyans1727C/backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier resolves email first, then username.
func (r *UserRepository) FindByIdentifier(identifier string) (*entity.User, error) {
	user, err := r.FindByEmail(identifier)
	if err == nil {
		return user, nil
	}
	return r.FindByUsername(identifier)
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) UpdatePassword(tx *gorm.DB, userID uint, hashed string) error {
	return tx.Model(&entity.User{}).Where("id = ?", userID).Update("password", hashed).Error
}

// ---------------- Profile ----------------

func (r *UserRepository) FindProfile(userID uint) (*entity.UserProfile, error) {
	var p entity.UserProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) SaveProfile(p *entity.UserProfile) error {
	return r.DB.Save(p).Error
}

func (r *UserRepository) DeleteProfile(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&entity.UserProfile{}).Error
}
