package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"contactbook/internal/auth"
	"contactbook/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Contacts API running")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// Secured routes (require a bearer token)
	contacts := e.Group("/contacts", auth.Middleware(jwtService))
	contacts.POST("", contactHandler.Create)
	contacts.GET("", contactHandler.List)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
