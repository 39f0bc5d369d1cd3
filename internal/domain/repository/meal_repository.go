package repository

import (
	"context"

	"gymtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMealNotFound is returned when a meal does not exist.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository stores submitted meals and their items.
type MealRepository interface {
	// Create persists a meal together with its items.
	Create(ctx context.Context, meal *entity.Meal) error

	// FindByID retrieves a meal with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)

	// ListByUser returns the newest limit meals of a user, newest first, without items.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Meal, error)

	// Delete removes a meal and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
