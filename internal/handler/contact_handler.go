package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"contacthub/internal/errors"
	"contacthub/internal/model"
	"contacthub/internal/service"
)

// ContactHandler handles contact CRUD endpoints for the authenticated user.
type ContactHandler struct {
	contacts service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contacts service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// ContactRequest represents a contact create/update payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	PhoneNo string `json:"phone_no" validate:"required,e164|numeric,min=10,max=16"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Gender  string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	Photo   string `json:"photo,omitempty"`
}

// CreateContact godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact data"
// @Success 201 {object} model.Contact
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact := &model.Contact{
		Name:    req.Name,
		PhoneNo: req.PhoneNo,
		Email:   req.Email,
		Gender:  req.Gender,
		Photo:   req.Photo,
	}
	created, err := h.contacts.CreateContact(c.Request().Context(), claims.UserID, contact)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// ListContacts godoc
// @Summary List the user's contacts
// @Tags contacts
// @Produce json
// @Success 200 {array} model.Contact
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	contacts, err := h.contacts.ListContacts(c.Request().Context(), claims.UserID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contacts)
}

// GetContact godoc
// @Summary Get one contact
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} model.Contact
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	contact, err := h.contacts.GetContact(c.Request().Context(), claims.UserID, uint(id))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contact)
}

// UpdateContact godoc
// @Summary Update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body ContactRequest true "Contact data"
// @Success 200 {object} model.Contact
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact := &model.Contact{
		ID:      uint(id),
		Name:    req.Name,
		PhoneNo: req.PhoneNo,
		Email:   req.Email,
		Gender:  req.Gender,
		Photo:   req.Photo,
	}
	updated, err := h.contacts.UpdateContact(c.Request().Context(), claims.UserID, contact)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteContact godoc
// @Summary Delete a contact
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.contacts.DeleteContact(c.Request().Context(), claims.UserID, uint(id)); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "contact deleted"})
}

// SearchContacts godoc
// @Summary Search the user's contacts by name, phone or email
// @Tags contacts
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} model.Contact
// @Security BearerAuth
// @Router /contacts/search [get]
func (h *ContactHandler) SearchContacts(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	contacts, err := h.contacts.SearchContacts(c.Request().Context(), claims.UserID, c.QueryParam("q"))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, contacts)
}

// CountContacts godoc
// @Summary Count the user's contacts
// @Tags contacts
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /contacts/count [get]
func (h *ContactHandler) CountContacts(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	count, err := h.contacts.CountContacts(c.Request().Context(), claims.UserID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}
