package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"contactbook/internal/apperrors"
	"contactbook/internal/auth"
	"contactbook/internal/model"
	"contactbook/internal/service"
)

// ContactHandler handles the protected contact endpoints. The caller's
// identity always comes from the auth gate, never from the request body.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContactRequest represents a contact creation request.
type CreateContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Create godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body CreateContactRequest true "Contact data"
// @Success 201 {object} model.Contact
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return writeError(c, apperrors.ErrNameRequired)
	}

	contact, err := h.contactService.Create(c.Request().Context(), userID, req.Name, req.Phone, req.Email)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, contact)
}

// List godoc
// @Summary List the caller's contacts in creation order
// @Tags contacts
// @Produce json
// @Success 200 {array} model.Contact
// @Failure 401 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	contacts, err := h.contactService.List(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, contacts)
}

// Update godoc
// @Summary Partially update an owned contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact id"
// @Param request body model.ContactUpdate true "Fields to replace"
// @Success 200 {object} model.Contact
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := contactIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	var upd model.ContactUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	contact, err := h.contactService.Update(c.Request().Context(), userID, contactID, upd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, contact)
}

// Delete godoc
// @Summary Delete an owned contact
// @Tags contacts
// @Produce json
// @Param id path int true "Contact id"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := contactIDParam(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.contactService.Delete(c.Request().Context(), userID, contactID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Contact deleted"})
}

// contactIDParam parses the :id path segment. A non-numeric id names no
// contact, so it maps to the same not-found error as a missing one.
func contactIDParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrContactNotFound
	}
	return id, nil
}
