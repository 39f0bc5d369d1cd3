// Package repository declares the storage contracts the usecases depend on.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"gymtrack/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository stores profiles together with their daily targets.
type UserRepository interface {
	// FindByID returns ErrUserNotFound when no profile exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	// Update overwrites the profile and targets. Returns ErrUserNotFound for unknown ids.
	Update(ctx context.Context, user *entity.User) error
}
