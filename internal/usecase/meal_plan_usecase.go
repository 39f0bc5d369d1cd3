package usecase

import (
	"context"

	"gymtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// MealPlanUsecase keeps the cached daily plan of a user.
type MealPlanUsecase interface {
	SavePlan(ctx context.Context, userID uuid.UUID, plan *entity.MealPlan) (*entity.MealPlan, error)
	GetPlan(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error)
	DeletePlan(ctx context.Context, userID uuid.UUID) error
}
