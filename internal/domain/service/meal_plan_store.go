package service

import (
	"context"

	"gymtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMealPlanNotFound is returned when no plan is cached for a user.
var ErrMealPlanNotFound = errors.New("meal plan not found")

// MealPlanStore caches the latest daily meal plan of each user.
type MealPlanStore interface {
	// Save replaces the cached plan of plan.UserID.
	Save(ctx context.Context, plan *entity.MealPlan) error

	// Load returns the cached plan of a user.
	Load(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error)

	// Delete drops the cached plan. Missing plans are not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}
