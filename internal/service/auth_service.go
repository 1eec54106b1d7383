package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"contactbook/internal/apperrors"
	"contactbook/internal/auth"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

// bcryptCost keeps a single verification comfortably above 100ms.
const bcryptCost = 12

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password. The hash is computed
// before the repository takes its lock; uniqueness is enforced by the
// repository at insert time.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrEmailAndPasswordRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a signed token. An unknown email and
// a wrong password produce the same error so callers cannot probe for which
// emails are registered.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.IssueToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
