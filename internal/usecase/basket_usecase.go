package usecase

import (
	"context"

	"gymtrack/internal/domain/entity"
	"gymtrack/internal/domain/nutrition"

	"github.com/google/uuid"
)

// BasketLine is one basket entry with the macros it contributes.
type BasketLine struct {
	FoodID    string          `json:"food_id"`
	FoodName  string          `json:"food_name"`
	Quantity  float64         `json:"quantity"`
	Absolute  bool            `json:"absolute"`
	Nutrition nutrition.Value `json:"nutrition"`
}

// BasketPreview is the current composition of a user's next meal.
type BasketPreview struct {
	Lines  []BasketLine    `json:"lines"`
	Totals nutrition.Value `json:"totals"`
}

// BasketUsecase manages the per-user selection basket.
type BasketUsecase interface {
	// AddFood adds a catalog food. A nil quantity uses the configured default.
	AddFood(ctx context.Context, userID uuid.UUID, foodID string, quantity *float64) (*BasketPreview, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, foodID string, quantity float64) (*BasketPreview, error)
	RemoveFood(ctx context.Context, userID uuid.UUID, foodID string) (*BasketPreview, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	Preview(ctx context.Context, userID uuid.UUID) (*BasketPreview, error)
	// AddMealPlanFood adds the index-th food of a cached plan section as an absolute line.
	AddMealPlanFood(ctx context.Context, userID uuid.UUID, mealType entity.MealType, index int) (*BasketPreview, error)
	// AddFromQR adds the food encoded in a scanned share code.
	AddFromQR(ctx context.Context, userID uuid.UUID, payload string) (*BasketPreview, error)
}
