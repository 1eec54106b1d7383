package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenExpiry is the duration for which issued tokens are valid.
const TokenExpiry = time.Hour

// Claims represents JWT claims.
type Claims struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies signed identity tokens. Verification is
// stateless: any token with a valid signature is honored until its embedded
// expiry, even across process restarts, as long as the secret is stable.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// IssueToken signs a token asserting the given user identity, valid for
// TokenExpiry from now.
func (s *JWTService) IssueToken(userID uint64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies a token string and returns its claims. It fails on
// a bad signature, a malformed token, a non-HMAC signing method, or an
// expiry at or before the current instant.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
