package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yukikurage/notes-api/internal/constants"
	"github.com/yukikurage/notes-api/internal/models"
	"github.com/yukikurage/notes-api/internal/notify"
	"github.com/yukikurage/notes-api/internal/repository"
	"github.com/yukikurage/notes-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrFailedToIssue     = errors.New("failed to issue reset token")
	ErrFailedToDeliver   = errors.New("failed to deliver reset token")
)

// PasswordResetService issues and consumes single-use password reset tokens.
type PasswordResetService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.PasswordResetRepository
	notifier  notify.ResetNotifier
	ttl       time.Duration
	now       func() time.Time
}

func NewPasswordResetService(userRepo repository.UserRepository, tokenRepo repository.PasswordResetRepository, notifier notify.ResetNotifier, ttl time.Duration) *PasswordResetService {
	if ttl <= 0 {
		ttl = constants.PasswordResetTTL
	}
	return &PasswordResetService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		notifier:  notifier,
		ttl:       ttl,
		now:       time.Now,
	}
}

// RequestReset issues a fresh token for the email, replacing older ones, and
// hands it to the notifier. Unknown emails go through the same token writes
// but nothing is delivered and an empty token is returned, so neither the
// response nor its timing tells callers which addresses are registered.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", ErrInvalidEmail
	}

	registered := true
	if _, err := s.userRepo.FindByEmail(ctx, email); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("failed to find user: %w", err)
		}
		registered = false
	}

	if err := s.tokenRepo.DeleteByEmail(ctx, email); err != nil {
		return "", fmt.Errorf("failed to clear old tokens: %w", err)
	}

	value, err := utils.GenerateResetToken()
	if err != nil {
		return "", ErrFailedToIssue
	}

	// A token stored for an unknown email is never sent, and confirming it
	// fails on the user lookup.
	token := &models.PasswordResetToken{
		Email:   email,
		Token:   value,
		Expires: s.now().UTC().Add(s.ttl),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	if !registered {
		return "", nil
	}

	if err := s.notifier.SendReset(ctx, email, value); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToDeliver, err)
	}

	logrus.WithField("email", email).Info("Password reset token issued")
	return value, nil
}

// ConfirmReset sets a new password if the token is known and not expired.
// The token is deleted in the same transaction, so it can be used only once.
func (s *PasswordResetService) ConfirmReset(ctx context.Context, tokenValue, newPassword string) error {
	if len(newPassword) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	token, err := s.tokenRepo.FindByToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to find reset token: %w", err)
	}
	if token.Expired(s.now()) {
		return ErrInvalidResetToken
	}

	user, err := s.userRepo.FindByEmail(ctx, token.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordAndConsumeToken(ctx, user.ID, hashed, token.ID); err != nil {
		if errors.Is(err, repository.ErrTokenConsumed) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}
