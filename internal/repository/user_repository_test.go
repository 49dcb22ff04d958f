package repository

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	apperrors "contacthub/internal/errors"
)

func TestTranslateDuplicate(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "username unique index",
			err:      &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'users.idx_users_username'"},
			expected: apperrors.ErrDuplicateUsername,
		},
		{
			name:     "email unique index",
			err:      &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@x.com' for key 'users.idx_users_email'"},
			expected: apperrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateDuplicate(tt.err), tt.expected)
		})
	}
}

func TestTranslateDuplicate_PassesThroughOtherErrors(t *testing.T) {
	deadlock := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
	assert.Equal(t, error(deadlock), translateDuplicate(deadlock))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translateDuplicate(plain))

	unknownIndex := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'users.PRIMARY'"}
	assert.Equal(t, error(unknownIndex), translateDuplicate(unknownIndex))
}
