package auth

import (
	"time"

	"github.com/google/uuid"
)

// DefaultResetTokenTTL is how long a password-reset token stays valid.
const DefaultResetTokenTTL = time.Hour

// ResetTokenIssuer mints opaque single-use tokens for password resets.
type ResetTokenIssuer interface {
	Issue(ttl time.Duration) (token string, expiry time.Time)
}

// UUIDIssuer issues random version-4 UUIDs (122 bits of entropy, URL-safe).
type UUIDIssuer struct{}

var _ ResetTokenIssuer = (*UUIDIssuer)(nil)

// NewUUIDIssuer creates a new reset token issuer.
func NewUUIDIssuer() *UUIDIssuer {
	return &UUIDIssuer{}
}

// Issue returns a fresh token and its absolute expiry instant.
func (i *UUIDIssuer) Issue(ttl time.Duration) (string, time.Time) {
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}
	return uuid.NewString(), time.Now().Add(ttl)
}
