package impl

import (
	"context"
	"fmt"
	"time"

	"gymtrack/config"
	"gymtrack/internal/domain/entity"
	"gymtrack/internal/domain/repository"

	"github.com/google/uuid"
)

// historyTimestampLayout is the loose, zone-less form history entries carry.
const historyTimestampLayout = "2006-01-02T15:04:05.000000"

const fallbackHistoryLimit = 200

// historyReader lists meal summaries rendered in the configured timezone.
type historyReader struct {
	mealRepo repository.MealRepository
	loc      *time.Location
	limit    int
}

func newHistoryReader(mealRepo repository.MealRepository, cfg *config.Config) historyReader {
	reader := historyReader{mealRepo: mealRepo, loc: time.UTC, limit: fallbackHistoryLimit}
	if cfg != nil && cfg.Nutrition != nil {
		reader.loc = cfg.Nutrition.Location()
		if cfg.Nutrition.HistoryLimit > 0 {
			reader.limit = cfg.Nutrition.HistoryLimit
		}
	}

	return reader
}

// list returns up to limit entries, capped by the configured history limit.
func (h historyReader) list(ctx context.Context, userID uuid.UUID, limit int) ([]entity.MealHistoryEntry, error) {
	if limit <= 0 || limit > h.limit {
		limit = h.limit
	}

	meals, err := h.mealRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}

	entries := make([]entity.MealHistoryEntry, 0, len(meals))
	for _, meal := range meals {
		entries = append(entries, toHistoryEntry(meal, h.loc))
	}

	return entries, nil
}

func toHistoryEntry(meal *entity.Meal, loc *time.Location) entity.MealHistoryEntry {
	return entity.MealHistoryEntry{
		ID:            meal.ID.String(),
		Name:          meal.Name.String(),
		TotalCalories: meal.TotalCalories,
		TotalProtein:  meal.TotalProtein,
		TotalFat:      meal.TotalFat,
		TotalCarbs:    meal.TotalCarbs,
		CreatedAt:     meal.CreatedAt.In(loc).Format(historyTimestampLayout),
	}
}

func entryPointers(entries []entity.MealHistoryEntry) []*entity.MealHistoryEntry {
	out := make([]*entity.MealHistoryEntry, len(entries))
	for i := range entries {
		out[i] = &entries[i]
	}

	return out
}
