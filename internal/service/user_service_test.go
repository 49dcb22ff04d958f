package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "contacthub/internal/errors"
	"contacthub/internal/model"
)

func TestUserService_GetProfile(t *testing.T) {
	email := "a@x.com"
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
		ID:           1,
		Username:     "alice",
		Email:        &email,
		PasswordHash: "$2a$10$should-never-leave-the-server",
	}, nil)

	svc := NewUserService(mockRepo, nil)
	profile, err := svc.GetProfile(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), profile.ID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, &email, profile.Email)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	profile, err := svc.GetProfile(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, profile)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)
	mockRepo.On("DeleteWithContacts", mock.Anything, uint(1)).Return(nil)

	svc := NewUserService(mockRepo, nil)
	err := svc.DeleteAccount(context.Background(), "alice")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteAccount_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	err := svc.DeleteAccount(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	mockRepo.AssertNotCalled(t, "DeleteWithContacts", mock.Anything, mock.Anything)
}
