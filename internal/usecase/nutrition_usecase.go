package usecase

import (
	"context"
	"time"

	"gymtrack/internal/domain/entity"
	"gymtrack/internal/domain/nutrition"

	"github.com/google/uuid"
)

// DailyNutrition is what a user has eaten on the reference day against the daily target.
type DailyNutrition struct {
	Date      string                     `json:"date"`
	Consumed  nutrition.Value            `json:"consumed"`
	Target    nutrition.Value            `json:"target"`
	Remaining nutrition.Value            `json:"remaining"`
	MealCount int                        `json:"meal_count"`
	Meals     []*entity.MealHistoryEntry `json:"meals"`
}

// FoodSuggestions are catalog foods that still fit the day's remaining calories.
type FoodSuggestions struct {
	Date      string                 `json:"date"`
	Remaining nutrition.Value        `json:"remaining"`
	Foods     []nutrition.Suggestion `json:"foods"`
}

// NutritionUsecase reports daily intake.
type NutritionUsecase interface {
	Daily(ctx context.Context, userID uuid.UUID, reference time.Time) (*DailyNutrition, error)
	// Suggestions lists foods of the user's origin whose default portion fits what is left
	// of the day's calories. Liked foods come first, then by name.
	Suggestions(ctx context.Context, userID uuid.UUID, reference time.Time, limit int) (*FoodSuggestions, error)
}
