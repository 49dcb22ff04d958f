package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedTag  string
	}{
		{"duplicate username", ErrDuplicateUsername, http.StatusConflict, "DUPLICATE_USERNAME"},
		{"duplicate email", ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"invalid reset token", ErrInvalidResetToken, http.StatusUnauthorized, "INVALID_RESET_TOKEN"},
		{"expired reset token", ErrResetTokenExpired, http.StatusUnauthorized, "RESET_TOKEN_EXPIRED"},
		{"contact not found", ErrContactNotFound, http.StatusNotFound, "CONTACT_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedCode, he.StatusCode)
			assert.Equal(t, tt.expectedTag, he.Code)
			assert.Equal(t, tt.err.Error(), he.Message)
		})
	}
}

func TestMapErrorToHTTP_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("save user"), ErrDuplicateEmail)
	he := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusConflict, he.StatusCode)
	assert.Equal(t, "DUPLICATE_EMAIL", he.Code)
}

func TestMapErrorToHTTP_UnknownErrorIsOpaque(t *testing.T) {
	he := MapErrorToHTTP(errors.New("dial tcp 10.0.0.5:3306: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, he.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", he.Code)
	// Internal detail must not leak into the client-visible message.
	assert.Equal(t, "internal server error", he.Message)
}
