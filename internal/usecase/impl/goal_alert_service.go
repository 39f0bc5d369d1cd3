package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "gymtrack/internal/delivery/context"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/repository"
	"gymtrack/internal/domain/service"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FCM multicast limit.
const notificationBatchSize = 500

type goalAlertService struct {
	nutrition       usecase.NutritionUsecase
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	now             func() time.Time
	logger          *slog.Logger
}

// GoalAlertServiceParams holds dependencies for GoalAlertService, injected by Fx.
type GoalAlertServiceParams struct {
	fx.In

	Nutrition       usecase.NutritionUsecase
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewGoalAlertService creates a new goal alert service instance
func NewGoalAlertService(params GoalAlertServiceParams) usecase.GoalAlertUsecase {
	return &goalAlertService{
		nutrition:       params.Nutrition,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (s *goalAlertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleMealLogged pushes an alert when this meal is the one that reached the calorie target.
func (s *goalAlertService) HandleMealLogged(ctx context.Context, event *service.MealLoggedEvent) (*usecase.GoalAlertResult, error) {
	if event == nil {
		return nil, errors.Wrap(usecase.ErrInvalidEvent, "empty event")
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrInvalidEvent, "bad user id %q", event.UserID)
	}

	reference := event.LoggedAt
	if reference.IsZero() {
		reference = s.now()
	}

	daily, err := s.nutrition.Daily(ctx, userID, reference)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrapf(usecase.ErrInvalidEvent, "user %s not found", userID)
		}

		return nil, fmt.Errorf("failed to compute daily nutrition: %w", err)
	}

	result := &usecase.GoalAlertResult{}
	target := daily.Target.Calories
	consumed := daily.Consumed.Calories
	if target <= 0 || consumed < target || consumed-event.TotalCalories >= target {
		return result, nil
	}
	result.GoalReached = true

	devices, err := s.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active devices: %w", err)
	}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	title := "Daily calorie goal reached"
	body := fmt.Sprintf("Your %s brought you to %d of %d kcal today.", event.MealName, consumed, target)
	data := map[string]string{
		"type":     "goal_reached",
		"meal_id":  event.MealID,
		"consumed": strconv.Itoa(consumed),
		"target":   strconv.Itoa(target),
	}

	var invalidTokens []string
	for start := 0; start < len(tokens); start += notificationBatchSize {
		batch := tokens[start:min(start+notificationBatchSize, len(tokens))]

		sent, failed, invalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			s.log(ctx).Warn("Goal alert batch failed",
				slog.Int("batchSize", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	if len(invalidTokens) > 0 {
		disabled, err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).Warn("Failed to deactivate invalid devices", slog.Any("error", err))
		}
		result.DevicesDisabled = disabled
	}

	if result.Sent == 0 && result.Failed > 0 && len(invalidTokens) < result.Failed {
		return result, errors.Errorf("goal alert delivery failed for %d devices", result.Failed)
	}

	return result, nil
}
