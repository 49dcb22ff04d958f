package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contacthub/internal/errors"
	"contacthub/internal/service"
)

// UserHandler handles profile endpoints for the authenticated user.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.users.GetProfile(c.Request().Context(), claims.Username)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount godoc
// @Summary Delete the authenticated user's account and all contacts
// @Tags users
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /me [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	if err := h.users.DeleteAccount(c.Request().Context(), claims.Username); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "account deleted"})
}
