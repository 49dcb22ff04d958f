package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contacthub/internal/auth"
	"contacthub/internal/errors"
	"contacthub/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	jwtService  *auth.JWTService
	devMode     bool
}

// NewAuthHandler creates a new auth handler. devMode controls whether the
// reset token is echoed in the forgot-password response.
func NewAuthHandler(authService service.AuthService, jwtService *auth.JWTService, devMode bool) *AuthHandler {
	return &AuthHandler{authService: authService, jwtService: jwtService, devMode: devMode}
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=100"`
	Password string  `json:"password" validate:"required,min=6"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

// SigninRequest represents a login request.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest carries the email of the account to reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest consumes a reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// SigninResponse represents a successful login.
type SigninResponse struct {
	Token    string  `json:"token"`
	UserID   uint    `json:"userId"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user":    user.Profile(),
	})
}

// Signin godoc
// @Summary Authenticate and obtain a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Login credentials"
// @Success 200 {object} SigninResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	token, err := h.jwtService.IssueSessionToken(user.ID, user.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to issue session token",
			Code:  "TOKEN_ISSUE_FAILED",
		})
	}

	return c.JSON(http.StatusOK, SigninResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.RequestPasswordReset(c.Request().Context(), req.Email)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	resp := map[string]string{
		"message": "reset password link has been sent to your email",
	}
	// The raw token leaves the server only through the mailer, except in
	// development where it is handy for local testing.
	if h.devMode {
		resp["resetToken"] = token
	}
	return c.JSON(http.StatusOK, resp)
}

// ResetPassword godoc
// @Summary Complete a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.CompletePasswordReset(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "password reset successfully",
	})
}
