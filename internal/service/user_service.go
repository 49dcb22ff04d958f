package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"contacthub/internal/cache"
	apperrors "contacthub/internal/errors"
	"contacthub/internal/model"
	"contacthub/internal/repository"
)

// UserService exposes profile operations for an authenticated user.
type UserService interface {
	GetProfile(ctx context.Context, username string) (*model.Profile, error)
	DeleteAccount(ctx context.Context, username string) error
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

// GetProfile returns the public view of the user.
func (s *userService) GetProfile(ctx context.Context, username string) (*model.Profile, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	profile := user.Profile()
	return &profile, nil
}

// DeleteAccount removes the user and all their contacts transactionally.
func (s *userService) DeleteAccount(ctx context.Context, username string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := s.users.DeleteWithContacts(ctx, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete account: %w", err)
	}

	_ = s.cache.Delete(ctx, fmt.Sprintf("contacts:%d", user.ID))
	return nil
}
