package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"contacthub/internal/auth"
	apperrors "contacthub/internal/errors"
	"contacthub/internal/model"
	"contacthub/internal/repository"
)

// AuthService handles registration and the credential lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string, email *string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	RequestPasswordReset(ctx context.Context, email string) (token string, err error)
	CompletePasswordReset(ctx context.Context, token, newPassword string) error
}

type authService struct {
	users    repository.UserRepository
	hasher   auth.PasswordHasher
	issuer   auth.ResetTokenIssuer
	mailer   Mailer
	resetTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher, issuer auth.ResetTokenIssuer, mailer Mailer, resetTTL time.Duration) AuthService {
	return &authService{
		users:    users,
		hasher:   hasher,
		issuer:   issuer,
		mailer:   mailer,
		resetTTL: resetTTL,
	}
}

// Register creates a new user with a hashed password. Uniqueness of username
// and email is ultimately enforced by the store's constraints, so two
// concurrent registrations for the same name can both pass the pre-checks but
// only one insert succeeds.
func (s *authService) Register(ctx context.Context, username, password string, email *string) (*model.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if email != nil {
		if _, err := s.users.FindByEmail(ctx, *email); err == nil {
			return nil, apperrors.ErrDuplicateEmail
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the identity.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// RequestPasswordReset issues a reset token for the account behind email.
// Token and expiry are set together in one row update; a second request
// simply replaces the pending token.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("find user by email: %w", err)
	}

	token, expiry := s.issuer.Issue(s.resetTTL)
	user.ResetToken = &token
	user.ResetExpiry = &expiry
	if err := s.users.Update(ctx, user); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}

	s.mailer.SendResetToken(email, token)
	return token, nil
}

// CompletePasswordReset consumes a reset token and overwrites the password.
// The new hash and the cleared token fields land in the same row update, so
// the token cannot be observed as both spent and still usable. Expiry is
// checked lazily here; an expired token stays on the row until the next
// reset request replaces it.
func (s *authService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("find user by reset token: %w", err)
	}

	if user.ResetExpiry == nil || user.ResetExpiry.Before(time.Now()) {
		return apperrors.ErrResetTokenExpired
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetExpiry = nil
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}
