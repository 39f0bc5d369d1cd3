package impl

import (
	"context"
	"fmt"
	"log/slog"

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

type basketService struct {
	baskets         *BasketStore
	foodRepo        repository.FoodRepository
	mealPlanStore   service.MealPlanStore
	qrCodeService   service.QRCodeService
	defaultQuantity float64
	logger          *slog.Logger
}

// BasketServiceParams holds dependencies for BasketService, injected by Fx.
type BasketServiceParams struct {
	fx.In

	Baskets       *BasketStore
	FoodRepo      repository.FoodRepository
	MealPlanStore service.MealPlanStore
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewBasketService creates a new basket service instance
func NewBasketService(params BasketServiceParams) usecase.BasketUsecase {
	defaultQuantity := nutrition.ReferenceQuantity
	if params.Config != nil && params.Config.Nutrition != nil && params.Config.Nutrition.DefaultQuantity > 0 {
		defaultQuantity = params.Config.Nutrition.DefaultQuantity
	}

	return &basketService{
		baskets:         params.Baskets,
		foodRepo:        params.FoodRepo,
		mealPlanStore:   params.MealPlanStore,
		qrCodeService:   params.QRCodeService,
		defaultQuantity: defaultQuantity,
		logger:          params.Logger,
	}
}

func (s *basketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AddFood looks the food up and adds it to the user's basket.
func (s *basketService) AddFood(ctx context.Context, userID uuid.UUID, foodID string, quantity *float64) (*usecase.BasketPreview, error) {
	food, err := s.foodRepo.FindByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	q := s.defaultQuantity
	if quantity != nil {
		q = *quantity
	}

	return s.mutate(userID, func(b *nutrition.Basket) error {
		return b.Add(*food, q, false)
	})
}

// UpdateQuantity changes the quantity of a line. Absolute lines keep theirs.
func (s *basketService) UpdateQuantity(ctx context.Context, userID uuid.UUID, foodID string, quantity float64) (*usecase.BasketPreview, error) {
	return s.mutate(userID, func(b *nutrition.Basket) error {
		if _, ok := b.Line(foodID); !ok {
			return domainerrors.ErrBasketLineNotFound
		}

		return b.UpdateQuantity(foodID, quantity)
	})
}

// RemoveFood drops a line. Removing an absent food is not an error.
func (s *basketService) RemoveFood(ctx context.Context, userID uuid.UUID, foodID string) (*usecase.BasketPreview, error) {
	return s.mutate(userID, func(b *nutrition.Basket) error {
		b.Remove(foodID)

		return nil
	})
}

// Clear empties the basket.
func (s *basketService) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := s.mutate(userID, func(b *nutrition.Basket) error {
		b.Clear()

		return nil
	})

	return err
}

// Preview returns the lines with their contributions and the recomputed totals.
func (s *basketService) Preview(ctx context.Context, userID uuid.UUID) (*usecase.BasketPreview, error) {
	return s.mutate(userID, func(*nutrition.Basket) error { return nil })
}

// AddMealPlanFood adds a planned food. Its macros already match the planned quantity.
func (s *basketService) AddMealPlanFood(ctx context.Context, userID uuid.UUID, mealType entity.MealType, index int) (*usecase.BasketPreview, error) {
	plan, err := s.mealPlanStore.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrMealPlanNotFound) {
			return nil, domainerrors.ErrMealPlanNotFound
		}

		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}

	section, ok := plan.Section(mealType)
	if !ok {
		return nil, domainerrors.ErrInvalidMealType
	}
	if index < 0 || index >= len(section.Foods) {
		return nil, domainerrors.ErrMealPlanFoodNotFound
	}

	planned := section.Foods[index]
	food := entity.Food{
		ID:       uuid.NewString(),
		Name:     planned.Name,
		Calories: planned.Calories,
		Protein:  planned.Protein,
		Fat:      planned.Fat,
		Carbs:    planned.Carbs,
	}

	preview, err := s.mutate(userID, func(b *nutrition.Basket) error {
		return b.Add(food, nutrition.ParseQuantity(planned.Quantity), true)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Debug("Meal plan food added to basket",
		slog.String("mealType", mealType.String()),
		slog.String("food", planned.Name),
	)

	return preview, nil
}

// AddFromQR decodes a share code and adds the food with the default quantity.
func (s *basketService) AddFromQR(ctx context.Context, userID uuid.UUID, payload string) (*usecase.BasketPreview, error) {
	foodID, err := s.qrCodeService.ParseFoodQR(payload)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WrapMessage(err.Error())
	}

	return s.AddFood(ctx, userID, foodID, nil)
}

func (s *basketService) mutate(userID uuid.UUID, fn func(b *nutrition.Basket) error) (*usecase.BasketPreview, error) {
	var preview *usecase.BasketPreview
	err := s.baskets.With(userID, func(b *nutrition.Basket) error {
		if err := fn(b); err != nil {
			return err
		}
		preview = previewOf(b)

		return nil
	})
	if err != nil {
		if errors.Is(err, nutrition.ErrMalformedQuantity) {
			return nil, domainerrors.ErrInvalidQuantity.WrapMessage(err.Error())
		}

		return nil, err
	}

	return preview, nil
}

func previewOf(b *nutrition.Basket) *usecase.BasketPreview {
	lines := b.Lines()
	preview := &usecase.BasketPreview{
		Lines:  make([]usecase.BasketLine, 0, len(lines)),
		Totals: b.SnapshotTotals(),
	}
	for _, l := range lines {
		preview.Lines = append(preview.Lines, usecase.BasketLine{
			FoodID:    l.Food.ID,
			FoodName:  l.Food.Name,
			Quantity:  l.Quantity,
			Absolute:  l.Absolute,
			Nutrition: l.Value(),
		})
	}

	return preview
}
