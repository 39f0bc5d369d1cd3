// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gymtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProfileInput carries the body data a daily target is derived from.
type ProfileInput struct {
	Name          string
	Gender        entity.Gender
	Age           int
	Weight        float64
	Height        float64
	ActivityLevel entity.ActivityLevel
	Goal          string
	Country       string
	City          string
	Language      string
}

// --- Output DTOs ---

// RegisterOutput returns the new user with an access token for the following calls.
type RegisterOutput struct {
	User        *entity.User
	AccessToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input ProfileInput) (*RegisterOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// UpdateProfile overwrites the profile and recomputes the daily target.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*entity.User, error)
}
