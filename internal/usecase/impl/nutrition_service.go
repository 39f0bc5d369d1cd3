package impl

import (
	"context"
	"fmt"
	"time"

	"gymtrack/config"
	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/nutrition"
	"gymtrack/internal/domain/repository"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 50
)

type nutritionService struct {
	userRepo        repository.UserRepository
	foodRepo        repository.FoodRepository
	preferenceRepo  repository.PreferenceRepository
	history         historyReader
	defaultQuantity float64
}

// NutritionServiceParams holds dependencies for NutritionService, injected by Fx.
type NutritionServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	MealRepo       repository.MealRepository
	FoodRepo       repository.FoodRepository
	PreferenceRepo repository.PreferenceRepository
	Config         *config.Config
}

// NewNutritionService creates a new nutrition service instance
func NewNutritionService(params NutritionServiceParams) usecase.NutritionUsecase {
	defaultQuantity := nutrition.ReferenceQuantity
	if params.Config != nil && params.Config.Nutrition != nil && params.Config.Nutrition.DefaultQuantity > 0 {
		defaultQuantity = params.Config.Nutrition.DefaultQuantity
	}

	return &nutritionService{
		userRepo:        params.UserRepo,
		foodRepo:        params.FoodRepo,
		preferenceRepo:  params.PreferenceRepo,
		history:         newHistoryReader(params.MealRepo, params.Config),
		defaultQuantity: defaultQuantity,
	}
}

// Daily sums the meals logged on the reference day, in the configured timezone.
func (s *nutritionService) Daily(ctx context.Context, userID uuid.UUID, reference time.Time) (*usecase.DailyNutrition, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.history.list(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	ref := reference.In(s.history.loc)
	today := nutrition.FilterToday(entries, ref)
	consumed := nutrition.DailyTotals(entries, ref)
	target := nutrition.FromTarget(user.Target)

	return &usecase.DailyNutrition{
		Date:      ref.Format(time.DateOnly),
		Consumed:  consumed,
		Target:    target,
		Remaining: nutrition.Remaining(target, consumed),
		MealCount: len(today),
		Meals:     entryPointers(today),
	}, nil
}

// Suggestions ranks the catalog of the user's country and city against today's remaining calories.
func (s *nutritionService) Suggestions(ctx context.Context, userID uuid.UUID, reference time.Time, limit int) (*usecase.FoodSuggestions, error) {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	limit = min(limit, maxSuggestionLimit)

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.history.list(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	ref := reference.In(s.history.loc)
	remaining := nutrition.Remaining(nutrition.FromTarget(user.Target), nutrition.DailyTotals(entries, ref))
	result := &usecase.FoodSuggestions{
		Date:      ref.Format(time.DateOnly),
		Remaining: remaining,
		Foods:     []nutrition.Suggestion{},
	}
	if remaining.Calories <= 0 {
		return result, nil
	}

	foods, err := s.foodRepo.List(ctx, entity.FoodFilter{Country: user.Country, City: user.City})
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	registry, err := nutrition.NewLikedFoodRegistry(ctx, userID, s.preferenceRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	fits := nutrition.FitsRemaining(registry.ApplyAndSort(derefFoods(foods)), remaining, s.defaultQuantity)
	if len(fits) > limit {
		fits = fits[:limit]
	}
	result.Foods = fits

	return result, nil
}

func (s *nutritionService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
