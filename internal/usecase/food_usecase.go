package usecase

import (
	"context"

	"gymtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ListFoodsInput narrows a food listing. An empty country falls back to the user's.
type ListFoodsInput struct {
	Country string
	City    string
	Search  string
	Limit   int
}

// CreateFoodInput holds a custom per-100 food profile.
type CreateFoodInput struct {
	ID          string
	Name        string
	Description string
	Calories    int
	Protein     float64
	Fat         float64
	Carbs       float64
	Country     string
	City        string
}

// FoodUsecase lists foods with the caller's liked flags applied.
type FoodUsecase interface {
	// ListFoods returns liked foods first, then the rest, each group by name.
	ListFoods(ctx context.Context, userID uuid.UUID, input ListFoodsInput) ([]entity.Food, error)
	GetFood(ctx context.Context, userID uuid.UUID, foodID string) (*entity.Food, error)
	LikedFoods(ctx context.Context, userID uuid.UUID) ([]entity.Food, error)
	CreateFood(ctx context.Context, input CreateFoodInput) (*entity.Food, error)
	// SetPreference sets the liked state, or flips it when liked is nil. Returns the new state.
	SetPreference(ctx context.Context, userID uuid.UUID, foodID string, liked *bool) (bool, error)
	// FoodQRCode renders a PNG share code for a food.
	FoodQRCode(ctx context.Context, foodID string) ([]byte, error)
}
