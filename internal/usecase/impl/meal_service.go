package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gymtrack/config"
	deliverycontext "gymtrack/internal/delivery/context"
	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/nutrition"
	"gymtrack/internal/domain/repository"
	"gymtrack/internal/domain/service"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type mealService struct {
	baskets   *BasketStore
	txManager repository.TransactionManager
	mealRepo  repository.MealRepository
	publisher service.EventPublisher
	history   historyReader
	now       func() time.Time
	logger    *slog.Logger
}

// MealServiceParams holds dependencies for MealService, injected by Fx.
type MealServiceParams struct {
	fx.In

	Baskets   *BasketStore
	TxManager repository.TransactionManager
	MealRepo  repository.MealRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMealService creates a new meal service instance
func NewMealService(params MealServiceParams) usecase.MealUsecase {
	return &mealService{
		baskets:   params.Baskets,
		txManager: params.TxManager,
		mealRepo:  params.MealRepo,
		publisher: params.Publisher,
		history:   newHistoryReader(params.MealRepo, params.Config),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (s *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Submit persists the basket as a meal. The basket is cleared only after the meal is stored.
func (s *mealService) Submit(ctx context.Context, userID uuid.UUID, mealType entity.MealType) (*entity.Meal, error) {
	if !mealType.IsValid() {
		return nil, domainerrors.ErrInvalidMealType
	}

	var meal *entity.Meal
	err := s.baskets.With(userID, func(b *nutrition.Basket) error {
		if b.Len() == 0 {
			return domainerrors.ErrBasketEmpty
		}

		meal = buildMeal(userID, mealType, b.Lines(), b.SnapshotTotals(), s.now())

		if err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewMealRepository().Create(ctx, meal)
		}); err != nil {
			return fmt.Errorf("failed to create meal: %w", err)
		}

		b.Clear()

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishMealLogged(ctx, meal)

	return meal, nil
}

// History lists the newest meals of the user.
func (s *mealService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.MealHistoryEntry, error) {
	entries, err := s.history.list(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return entryPointers(entries), nil
}

// GetMeal returns a meal with its items if the user owns it.
func (s *mealService) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*entity.Meal, error) {
	return s.findOwnedMeal(ctx, userID, mealID)
}

// DeleteMeal removes a meal the user owns.
func (s *mealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	if _, err := s.findOwnedMeal(ctx, userID, mealID); err != nil {
		return err
	}

	if err := s.mealRepo.Delete(ctx, mealID); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return domainerrors.ErrMealNotFound
		}

		return fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil
}

func (s *mealService) findOwnedMeal(ctx context.Context, userID, mealID uuid.UUID) (*entity.Meal, error) {
	meal, err := s.mealRepo.FindByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound
		}

		return nil, fmt.Errorf("failed to find meal: %w", err)
	}

	if meal.UserID != userID {
		return nil, domainerrors.ErrMealOwnershipViolation
	}

	return meal, nil
}

// publishMealLogged never fails the submission; the meal is already stored.
func (s *mealService) publishMealLogged(ctx context.Context, meal *entity.Meal) {
	event := &service.MealLoggedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		MealID:        meal.ID.String(),
		UserID:        meal.UserID.String(),
		MealName:      meal.Name.String(),
		TotalCalories: meal.TotalCalories,
		TotalProtein:  meal.TotalProtein,
		TotalFat:      meal.TotalFat,
		TotalCarbs:    meal.TotalCarbs,
		LoggedAt:      meal.CreatedAt,
	}

	if err := s.publisher.PublishMealLogged(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish meal logged event",
			slog.String("mealID", event.MealID),
			slog.Any("error", err),
		)
	}
}

func buildMeal(userID uuid.UUID, mealType entity.MealType, lines []nutrition.Line, totals nutrition.Value, now time.Time) *entity.Meal {
	items := make([]*entity.MealItem, 0, len(lines))
	for _, l := range lines {
		v := l.Value()
		items = append(items, &entity.MealItem{
			FoodID:      l.Food.ID,
			FoodName:    l.Food.Name,
			Quantity:    l.Quantity,
			PortionSize: nutrition.ReferenceQuantity,
			Calories:    v.Calories,
			Protein:     v.Protein,
			Fat:         v.Fat,
			Carbs:       v.Carbs,
		})
	}

	return &entity.Meal{
		UserID:        userID,
		Name:          mealType,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalFat:      totals.Fat,
		TotalCarbs:    totals.Carbs,
		Items:         items,
		CreatedAt:     now,
	}
}
