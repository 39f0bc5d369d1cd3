// Package impl contains the implementation of the application's business logic.
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

const defaultLanguage = "en"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user with a freshly computed daily target and issues an access token.
func (srv *userService) Register(ctx context.Context, input usecase.ProfileInput) (*usecase.RegisterOutput, error) {
	if err := validateProfile(input); err != nil {
		return nil, err
	}

	user := &entity.User{}
	applyProfile(user, input)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().Create(ctx, user)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, entity.Roles{entity.RoleUser}.ToStrings())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	srv.log(ctx).Info("User registered",
		slog.String("userID", user.ID.String()),
		slog.Int("dailyCalories", user.Target.Calories),
	)

	return &usecase.RegisterOutput{User: user, AccessToken: token}, nil
}

// GetProfile returns the stored user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfile replaces the body data and recomputes the target.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.ProfileInput) (*entity.User, error) {
	if err := validateProfile(input); err != nil {
		return nil, err
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}

		applyProfile(user, input)
		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

func validateProfile(input usecase.ProfileInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("name is required")
	case input.Gender != entity.GenderMale && input.Gender != entity.GenderFemale:
		return domainerrors.ErrValidationFailed.WrapMessage("gender must be Male or Female")
	case !nutrition.IsValidActivityLevel(input.ActivityLevel):
		return domainerrors.ErrValidationFailed.WrapMessage("activity level must be Low, Medium or High")
	case input.Age <= 0 || input.Weight <= 0 || input.Height <= 0:
		return domainerrors.ErrValidationFailed.WrapMessage("age, weight and height must be positive")
	}

	return nil
}

func applyProfile(user *entity.User, input usecase.ProfileInput) {
	user.Name = strings.TrimSpace(input.Name)
	user.Gender = input.Gender
	user.Age = input.Age
	user.Weight = input.Weight
	user.Height = input.Height
	user.ActivityLevel = input.ActivityLevel
	user.Goal = strings.TrimSpace(input.Goal)
	user.Country = strings.TrimSpace(input.Country)
	user.City = strings.TrimSpace(input.City)
	user.Language = input.Language
	if user.Language == "" {
		user.Language = defaultLanguage
	}
	user.Target = nutrition.DailyTarget(user)
}
