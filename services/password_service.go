package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/repository"
	"github.com/Priyans1727C/backend/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mailer delivers the reset link. The SES implementation lives in notifier.
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

type PasswordService struct {
	DB        *gorm.DB
	userRepo  *repository.UserRepository
	tokenRepo *repository.ResetTokenRepository
	mailer    Mailer

	tokenTTL    time.Duration
	frontendURL string
}

func NewPasswordService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	tokenRepo *repository.ResetTokenRepository,
	mailer Mailer,
	tokenTTL time.Duration,
	frontendURL string,
) *PasswordService {
	return &PasswordService{
		DB:          db,
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		mailer:      mailer,
		tokenTTL:    tokenTTL,
		frontendURL: frontendURL,
	}
}

// Forgot issues a single-use, time-bound token and mails the reset link.
// It reports success whether or not the email exists, so callers cannot
// probe for accounts; delivery failures are logged, not surfaced.
func (s *PasswordService) Forgot(email string) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return
	}

	token := &entity.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.tokenTTL),
	}
	if err := s.tokenRepo.Create(token); err != nil {
		log.Printf("forgot-password: create token for user %d: %v", user.ID, err)
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s/%s", s.frontendURL, utils.EncodeUID(user.ID), token.Token)
	if err := s.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		log.Printf("forgot-password: send mail to %s: %v", user.Email, err)
	}
}

// Reset validates uid+token against the exact user and sets the new
// password. The token is burned in the same transaction.
func (s *PasswordService) Reset(uid, token, newPassword string) error {
	userID, err := utils.DecodeUID(uid)
	if err != nil {
		return ErrInvalidUID
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return ErrInvalidUID
	}

	row, err := s.tokenRepo.FindValid(userID, token)
	if err != nil {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdatePassword(tx, userID, string(hashed)); err != nil {
			return err
		}
		return s.tokenRepo.MarkUsed(tx, row.ID)
	})
}
