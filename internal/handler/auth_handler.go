package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contactbook/internal/apperrors"
	"contactbook/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return writeError(c, apperrors.ErrEmailAndPasswordRequired)
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Email, req.Password); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "User registered"})
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// writeError translates a domain error to its status code and single-field
// body. All handler failures funnel through here.
func writeError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
