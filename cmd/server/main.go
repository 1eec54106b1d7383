package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"contactbook/internal/auth"
	"contactbook/internal/config"
	"contactbook/internal/handler"
	"contactbook/internal/repository"
	"contactbook/internal/router"
	"contactbook/internal/service"
)

// @title Contacts API
// @version 1.0
// @description Multi-tenant contact management with JWT authentication.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	// Storage lives for the process lifetime only; a restart starts empty.
	userRepo := repository.NewUserRepository()
	contactRepo := repository.NewContactRepository()

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, jwtService)
	contactService := service.NewContactService(contactRepo)

	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)

	router.Register(e, jwtService, authHandler, contactHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
