package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

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

type foodService struct {
	foodRepo       repository.FoodRepository
	userRepo       repository.UserRepository
	preferenceRepo repository.PreferenceRepository
	qrCodeService  service.QRCodeService
	logger         *slog.Logger
}

// FoodServiceParams holds dependencies for FoodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	FoodRepo       repository.FoodRepository
	UserRepo       repository.UserRepository
	PreferenceRepo repository.PreferenceRepository
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewFoodService creates a new food service instance
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		foodRepo:       params.FoodRepo,
		userRepo:       params.UserRepo,
		preferenceRepo: params.PreferenceRepo,
		qrCodeService:  params.QRCodeService,
		logger:         params.Logger,
	}
}

func (s *foodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListFoods lists the foods of an origin, defaulting to the user's country and city.
func (s *foodService) ListFoods(ctx context.Context, userID uuid.UUID, input usecase.ListFoodsInput) ([]entity.Food, error) {
	filter := entity.FoodFilter{
		Country: strings.TrimSpace(input.Country),
		City:    strings.TrimSpace(input.City),
		Search:  input.Search,
		Limit:   input.Limit,
	}

	if filter.Country == "" {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUserNotFound
			}

			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		filter.Country = user.Country
		if filter.City == "" {
			filter.City = user.City
		}
	}

	foods, err := s.foodRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	return s.applyPreferences(ctx, userID, foods)
}

// GetFood returns one food with the caller's liked flag.
func (s *foodService) GetFood(ctx context.Context, userID uuid.UUID, foodID string) (*entity.Food, error) {
	food, err := s.findFood(ctx, foodID)
	if err != nil {
		return nil, err
	}

	registry, err := nutrition.NewLikedFoodRegistry(ctx, userID, s.preferenceRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	liked := food.WithLiked(registry.IsLiked(food.ID))

	return &liked, nil
}

// LikedFoods returns the foods the user liked, by name.
func (s *foodService) LikedFoods(ctx context.Context, userID uuid.UUID) ([]entity.Food, error) {
	registry, err := nutrition.NewLikedFoodRegistry(ctx, userID, s.preferenceRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	foods, err := s.foodRepo.FindByIDs(ctx, registry.LikedIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to find liked foods: %w", err)
	}

	return registry.ApplyAndSort(derefFoods(foods)), nil
}

// CreateFood stores a custom food. A missing id is generated.
func (s *foodService) CreateFood(ctx context.Context, input usecase.CreateFoodInput) (*entity.Food, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("food name is required")
	}
	if input.Calories < 0 || input.Protein < 0 || input.Fat < 0 || input.Carbs < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("food macros must not be negative")
	}

	food := &entity.Food{
		ID:          strings.TrimSpace(input.ID),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Fat:         input.Fat,
		Carbs:       input.Carbs,
		Country:     strings.TrimSpace(input.Country),
		City:        strings.TrimSpace(input.City),
	}
	if food.ID == "" {
		food.ID = uuid.NewString()
	}

	if err := s.foodRepo.Create(ctx, food); err != nil {
		if errors.Is(err, repository.ErrDuplicateFood) {
			return nil, domainerrors.ErrFoodAlreadyExists
		}

		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	return food, nil
}

// SetPreference updates the liked set of the user for a known food.
func (s *foodService) SetPreference(ctx context.Context, userID uuid.UUID, foodID string, liked *bool) (bool, error) {
	if _, err := s.findFood(ctx, foodID); err != nil {
		return false, err
	}

	registry, err := nutrition.NewLikedFoodRegistry(ctx, userID, s.preferenceRepo)
	if err != nil {
		return false, fmt.Errorf("failed to load preferences: %w", err)
	}

	var state bool
	if liked == nil {
		state, err = registry.Toggle(ctx, foodID)
	} else {
		state, err = *liked, registry.SetPreference(ctx, foodID, *liked)
	}
	if err != nil {
		return registry.IsLiked(foodID), fmt.Errorf("failed to save preference: %w", err)
	}

	s.log(ctx).Debug("Food preference updated",
		slog.String("foodID", foodID),
		slog.Bool("liked", state),
	)

	return state, nil
}

// FoodQRCode renders the share code of a known food.
func (s *foodService) FoodQRCode(ctx context.Context, foodID string) ([]byte, error) {
	if _, err := s.findFood(ctx, foodID); err != nil {
		return nil, err
	}

	png, err := s.qrCodeService.GenerateFoodQR(foodID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return png, nil
}

func (s *foodService) findFood(ctx context.Context, foodID string) (*entity.Food, error) {
	food, err := s.foodRepo.FindByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	return food, nil
}

func (s *foodService) applyPreferences(ctx context.Context, userID uuid.UUID, foods []*entity.Food) ([]entity.Food, error) {
	registry, err := nutrition.NewLikedFoodRegistry(ctx, userID, s.preferenceRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	return registry.ApplyAndSort(derefFoods(foods)), nil
}

func derefFoods(foods []*entity.Food) []entity.Food {
	out := make([]entity.Food, 0, len(foods))
	for _, f := range foods {
		if f != nil {
			out = append(out, *f)
		}
	}

	return out
}
