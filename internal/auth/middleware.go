package auth

import (
	"errors"
	"fmt"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"contactbook/internal/apperrors"
)

// contextKey is where verified claims are stored on the request context.
const contextKey = "user"

// Middleware returns the auth gate applied to every protected route. It
// extracts the bearer token from the Authorization header, verifies it with
// the JWT service, and stores the verified claims in the request context.
// An absent header yields 401 "Missing token"; a token that fails
// verification for any reason yields 401 "Invalid token".
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: contextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(auth)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// Parse errors take priority over extraction errors inside
			// echo-jwt, so anything not marked invalid means the token was
			// never presented.
			gateErr := apperrors.ErrMissingToken
			if errors.Is(err, apperrors.ErrInvalidToken) {
				gateErr = apperrors.ErrInvalidToken
			}
			httpErr := apperrors.MapErrorToHTTP(gateErr)
			return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// UserIDFromContext returns the identity verified by Middleware. It is the
// only identity source protected handlers may consult.
func UserIDFromContext(c echo.Context) (uint64, error) {
	claims, ok := c.Get(contextKey).(*Claims)
	if !ok {
		return 0, apperrors.ErrInvalidToken
	}
	return claims.UserID, nil
}
