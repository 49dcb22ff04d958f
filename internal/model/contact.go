package model

import "time"

// Contact represents a single address-book entry owned by one user.
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	PhoneNo   string    `json:"phone_no" gorm:"size:20;not null"`
	Email     string    `json:"email,omitempty" gorm:"size:255"`
	Gender    string    `json:"gender,omitempty" gorm:"size:10"`
	Photo     string    `json:"photo,omitempty" gorm:"size:512"` // file path
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
