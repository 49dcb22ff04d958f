package repository

import (
	"context"

	"gorm.io/gorm"

	"contacthub/internal/model"
)

// ContactRepository defines contact persistence operations. Every query is
// scoped by the owning user id; a contact is never visible to another user.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, contact *model.Contact) error
	FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Contact, error)
	FindByUserID(ctx context.Context, userID uint) ([]model.Contact, error)
	Search(ctx context.Context, userID uint, query string) ([]model.Contact, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, id, userID uint) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create creates a new contact.
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// Update updates an existing contact.
func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

// FindByIDAndUserID finds a contact by ID, restricted to its owner.
func (r *contactRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// FindByUserID lists all contacts of a user.
func (r *contactRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Search matches name and email case-insensitively and phone by substring,
// always within the owner's contacts.
func (r *contactRepository) Search(ctx context.Context, userID uint, query string) ([]model.Contact, error) {
	var contacts []model.Contact
	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("LOWER(name) LIKE LOWER(?) OR phone_no LIKE ? OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// CountByUserID counts a user's contacts.
func (r *contactRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a contact, restricted to its owner.
func (r *contactRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Contact{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
