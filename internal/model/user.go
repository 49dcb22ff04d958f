package model

import "time"

// User represents a registered account that owns contacts.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email        *string    `json:"email,omitempty" gorm:"uniqueIndex;size:255"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	ResetToken   *string    `json:"-" gorm:"uniqueIndex;size:64"`
	ResetExpiry  *time.Time `json:"-" gorm:"column:reset_token_expiry"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Contacts []Contact `json:"-" gorm:"foreignKey:UserID"`
}

// Profile is the public projection of a user, safe to return to clients.
type Profile struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
}

// Profile returns the client-visible view of the user.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email}
}
