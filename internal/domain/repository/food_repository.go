package repository

import (
	"context"

	"gymtrack/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrFoodNotFound is returned when a food id does not exist.
	ErrFoodNotFound = errors.New("food not found")
	// ErrDuplicateFood is returned when creating a food whose id is taken.
	ErrDuplicateFood = errors.New("food already exists")
)

// FoodRepository lists and looks up per-100 food profiles.
type FoodRepository interface {
	// List returns foods matching the filter, ordered by name.
	List(ctx context.Context, filter entity.FoodFilter) ([]*entity.Food, error)

	// FindByID retrieves a single food.
	FindByID(ctx context.Context, id string) (*entity.Food, error)

	// FindByIDs retrieves the foods for the given ids. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Food, error)

	// Create persists a custom food.
	Create(ctx context.Context, food *entity.Food) error
}
