package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt. Each Hash call salts
// independently, so two hashes of the same input never compare equal.
type BcryptHasher struct {
	cost int
}

// Ensure BcryptHasher implements PasswordHasher
var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

// Hash returns the bcrypt digest of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches hash. bcrypt recomputes with the
// salt embedded in the hash and compares in constant time.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
