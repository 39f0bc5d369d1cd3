package repository

import (
	"context"

	"github.com/google/uuid"
)

// PreferenceRepository persists liked foods one row per (user, food).
// Writes touch a single food so concurrent changes by the same user never overwrite each other.
type PreferenceRepository interface {
	// LoadLikedFoods returns the liked ids of a user. Unknown users have none.
	LoadLikedFoods(ctx context.Context, userID uuid.UUID) ([]string, error)

	// LikeFood is idempotent.
	LikeFood(ctx context.Context, userID uuid.UUID, foodID string) error

	// UnlikeFood is a no-op when the food is not liked.
	UnlikeFood(ctx context.Context, userID uuid.UUID, foodID string) error
}
