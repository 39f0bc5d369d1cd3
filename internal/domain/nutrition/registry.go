package nutrition

import (
	"context"
	"maps"
	"slices"
	"sort"

	"gymtrack/internal/domain/entity"
	"gymtrack/internal/errors"

	"github.com/google/uuid"
)

// PreferenceStore persists the liked food ids of a user.
// Like and Unlike change one membership only; other foods of the user are untouched.
type PreferenceStore interface {
	LoadLikedFoods(ctx context.Context, userID uuid.UUID) ([]string, error)
	LikeFood(ctx context.Context, userID uuid.UUID, foodID string) error
	UnlikeFood(ctx context.Context, userID uuid.UUID, foodID string) error
}

// LikedFoodRegistry tracks the foods a user likes.
// It is loaded once and every preference change is written through to the store.
type LikedFoodRegistry struct {
	userID uuid.UUID
	store  PreferenceStore
	liked  map[string]struct{}
}

// NewLikedFoodRegistry loads the liked set of userID from store.
func NewLikedFoodRegistry(ctx context.Context, userID uuid.UUID, store PreferenceStore) (*LikedFoodRegistry, error) {
	ids, err := store.LoadLikedFoods(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load liked foods")
	}

	liked := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		liked[id] = struct{}{}
	}

	return &LikedFoodRegistry{userID: userID, store: store, liked: liked}, nil
}

// IsLiked reports whether foodID is liked.
func (r *LikedFoodRegistry) IsLiked(foodID string) bool {
	_, ok := r.liked[foodID]

	return ok
}

// LikedIDs returns the liked ids in ascending order.
func (r *LikedFoodRegistry) LikedIDs() []string {
	return slices.Sorted(maps.Keys(r.liked))
}

// SetPreference marks foodID liked or not liked and persists that one change.
// If saving fails the previous state is restored.
func (r *LikedFoodRegistry) SetPreference(ctx context.Context, foodID string, liked bool) error {
	was := r.IsLiked(foodID)
	if was == liked {
		return nil
	}

	save := r.store.UnlikeFood
	if liked {
		save = r.store.LikeFood
	}

	r.set(foodID, liked)
	if err := save(ctx, r.userID, foodID); err != nil {
		r.set(foodID, was)

		return errors.Wrap(err, "save liked food")
	}

	return nil
}

// Toggle flips the preference of foodID and returns the new state.
func (r *LikedFoodRegistry) Toggle(ctx context.Context, foodID string) (bool, error) {
	liked := !r.IsLiked(foodID)
	if err := r.SetPreference(ctx, foodID, liked); err != nil {
		return !liked, err
	}

	return liked, nil
}

// ApplyAndSort returns a new slice with IsLiked set from the registry,
// liked foods first and then by name.
func (r *LikedFoodRegistry) ApplyAndSort(foods []entity.Food) []entity.Food {
	sorted := make([]entity.Food, len(foods))
	for i, f := range foods {
		sorted[i] = f.WithLiked(r.IsLiked(f.ID))
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsLiked != sorted[j].IsLiked {
			return sorted[i].IsLiked
		}

		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}

func (r *LikedFoodRegistry) set(foodID string, liked bool) {
	if liked {
		r.liked[foodID] = struct{}{}
	} else {
		delete(r.liked, foodID)
	}
}
