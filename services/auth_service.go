package services

import (
	"strings"
	"time"

	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/repository"
	"github.com/Priyans1727C/backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns registration, login and the access/refresh token pair.
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   repo,
		jwtSecret:  secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type TokenPair struct {
	Access  string
	Refresh string
}

func (s *AuthService) issuePair(user *entity.User) (*TokenPair, error) {
	access, err := utils.GenerateToken(user.ID, user.Role, utils.TokenTypeAccess, s.jwtSecret, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateToken(user.ID, user.Role, utils.TokenTypeRefresh, s.jwtSecret, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Register creates a customer account and issues a fresh token pair.
// Email is optional; both username and email must be unique when set.
func (s *AuthService) Register(username, email, password string) (*entity.User, *TokenPair, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, ErrUsernameTaken
	}
	if email != "" {
		count, err = s.userRepo.CountByEmail(email)
		if err != nil {
			return nil, nil, err
		}
		if count > 0 {
			return nil, nil, ErrEmailTaken
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleCustomer,
		Status:   entity.StatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login accepts an email or a username as identifier. The match is
// exact; usernames keep the case they were registered with.
func (s *AuthService) Login(identifier, password string) (*entity.User, *TokenPair, error) {
	identifier = strings.TrimSpace(identifier)

	user, err := s.userRepo.FindByIdentifier(identifier)
	if err != nil {
		return nil, nil, ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidLogin
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh validates a refresh token and rotates the pair.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := utils.ParseToken(refreshToken, utils.TokenTypeRefresh, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidLogin
	}
	return s.issuePair(user)
}

// ---------------- Profile ----------------

func (s *AuthService) GetUser(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) GetProfile(userID uint) (*entity.UserProfile, error) {
	return s.userRepo.FindProfile(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates *entity.UserProfile) (*entity.UserProfile, error) {
	p, err := s.userRepo.FindProfile(userID)
	if err == gorm.ErrRecordNotFound {
		p = &entity.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	p.FirstName = updates.FirstName
	p.LastName = updates.LastName
	p.Phone = updates.Phone
	p.Address = updates.Address
	p.City = updates.City
	p.State = updates.State
	p.Pincode = updates.Pincode

	if err := s.userRepo.SaveProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *AuthService) DeleteProfile(userID uint) error {
	return s.userRepo.DeleteProfile(userID)
}
