package impl

import (
	"context"
	"fmt"

	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/service"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type mealPlanService struct {
	store service.MealPlanStore
}

// NewMealPlanService creates a new meal plan service instance
func NewMealPlanService(store service.MealPlanStore) usecase.MealPlanUsecase {
	return &mealPlanService{store: store}
}

// SavePlan replaces the cached plan of the user.
func (s *mealPlanService) SavePlan(ctx context.Context, userID uuid.UUID, plan *entity.MealPlan) (*entity.MealPlan, error) {
	if plan == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("meal plan is required")
	}

	plan.UserID = userID
	if err := s.store.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save meal plan: %w", err)
	}

	return plan, nil
}

// GetPlan returns the cached plan.
func (s *mealPlanService) GetPlan(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error) {
	plan, err := s.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrMealPlanNotFound) {
			return nil, domainerrors.ErrMealPlanNotFound
		}

		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}

	return plan, nil
}

// DeletePlan drops the cached plan. Missing plans are fine.
func (s *mealPlanService) DeletePlan(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}

	return nil
}
