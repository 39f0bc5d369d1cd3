package usecase

import (
	"context"

	"gymtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// MealUsecase turns baskets into stored meals and lists them.
type MealUsecase interface {
	// Submit stores the user's basket as a meal and empties the basket.
	Submit(ctx context.Context, userID uuid.UUID, mealType entity.MealType) (*entity.Meal, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MealHistoryEntry, error)
	GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*entity.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error
}
