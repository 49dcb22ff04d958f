package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher()

	h1, err := hasher.Hash("Secr3t!23")
	assert.NoError(t, err)
	h2, err := hasher.Hash("Secr3t!23")
	assert.NoError(t, err)

	// Per-call salting: same input, different digests.
	assert.NotEqual(t, h1, h2)
	assert.True(t, hasher.Verify("Secr3t!23", h1))
	assert.True(t, hasher.Verify("Secr3t!23", h2))
}

func TestBcryptHasher_VerifyRejectsWrongPassword(t *testing.T) {
	hasher := NewBcryptHasher()

	h, err := hasher.Hash("Secr3t!23")
	assert.NoError(t, err)

	assert.False(t, hasher.Verify("wrong", h))
	assert.False(t, hasher.Verify("", h))
	assert.False(t, hasher.Verify("Secr3t!23 ", h))
}

func TestBcryptHasher_VerifyRejectsMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Verify("Secr3t!23", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("Secr3t!23", ""))
}
