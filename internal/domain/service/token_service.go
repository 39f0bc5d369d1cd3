package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
