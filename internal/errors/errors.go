package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateUsername is returned when a username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when a password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidResetToken is returned when no user holds the reset token.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	// ErrResetTokenExpired is returned when the reset token is past its expiry.
	ErrResetTokenExpired = errors.New("reset token has expired")
	// ErrContactNotFound is returned when a contact does not exist for the owner.
	ErrContactNotFound = errors.New("contact not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// collapses to a generic 500 so internal detail never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateUsername):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USERNAME")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidResetToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_RESET_TOKEN")
	case errors.Is(err, ErrResetTokenExpired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "RESET_TOKEN_EXPIRED")
	case errors.Is(err, ErrContactNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONTACT_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
