package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"contacthub/internal/cache"
	apperrors "contacthub/internal/errors"
	"contacthub/internal/model"
	"contacthub/internal/repository"
)

const contactListCacheTTL = 5 * time.Minute

// ContactService exposes ownership-scoped contact operations.
type ContactService interface {
	CreateContact(ctx context.Context, userID uint, contact *model.Contact) (*model.Contact, error)
	GetContact(ctx context.Context, userID, id uint) (*model.Contact, error)
	ListContacts(ctx context.Context, userID uint) ([]model.Contact, error)
	UpdateContact(ctx context.Context, userID uint, contact *model.Contact) (*model.Contact, error)
	DeleteContact(ctx context.Context, userID, id uint) error
	SearchContacts(ctx context.Context, userID uint, query string) ([]model.Contact, error)
	CountContacts(ctx context.Context, userID uint) (int64, error)
}

type contactService struct {
	repo  repository.ContactRepository
	cache *cache.Client
}

// NewContactService builds a ContactService with repository and cache.
func NewContactService(repo repository.ContactRepository, cache *cache.Client) ContactService {
	return &contactService{repo: repo, cache: cache}
}

func (s *contactService) listCacheKey(userID uint) string {
	return fmt.Sprintf("contacts:%d", userID)
}

// CreateContact stores a new contact for the user.
func (s *contactService) CreateContact(ctx context.Context, userID uint, contact *model.Contact) (*model.Contact, error) {
	contact.ID = 0
	contact.UserID = userID
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.listCacheKey(userID))
	return contact, nil
}

// GetContact fetches one contact, restricted to its owner.
func (s *contactService) GetContact(ctx context.Context, userID, id uint) (*model.Contact, error) {
	contact, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, err
	}
	return contact, nil
}

// ListContacts returns all contacts of the user, cache-aside.
func (s *contactService) ListContacts(ctx context.Context, userID uint) ([]model.Contact, error) {
	if data, _ := s.cache.Get(ctx, s.listCacheKey(userID)); data != nil {
		var cached []model.Contact
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	contacts, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(contacts); err == nil {
		_ = s.cache.Set(ctx, s.listCacheKey(userID), payload, contactListCacheTTL)
	}
	return contacts, nil
}

// UpdateContact overwrites an existing contact after an ownership check.
func (s *contactService) UpdateContact(ctx context.Context, userID uint, contact *model.Contact) (*model.Contact, error) {
	existing, err := s.GetContact(ctx, userID, contact.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = contact.Name
	existing.PhoneNo = contact.PhoneNo
	existing.Email = contact.Email
	existing.Gender = contact.Gender
	existing.Photo = contact.Photo
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.listCacheKey(userID))
	return existing, nil
}

// DeleteContact removes a contact, restricted to its owner.
func (s *contactService) DeleteContact(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.listCacheKey(userID))
	return nil
}

// SearchContacts matches name, phone and email within the user's contacts.
func (s *contactService) SearchContacts(ctx context.Context, userID uint, query string) ([]model.Contact, error) {
	if query == "" {
		return s.ListContacts(ctx, userID)
	}
	return s.repo.Search(ctx, userID, query)
}

// CountContacts counts the user's contacts.
func (s *contactService) CountContacts(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountByUserID(ctx, userID)
}
