package impl

import (
	"context"
	"testing"
	"time"

	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/nutrition"
	"gymtrack/internal/domain/service"
	mockRepo "gymtrack/internal/mocks/repository"
	mockSvc "gymtrack/internal/mocks/service"
	mockUsecase "gymtrack/internal/mocks/usecase"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type goalAlertFixtures struct {
	service         usecase.GoalAlertUsecase
	nutrition       *mockUsecase.MockNutritionUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestGoalAlertService(t *testing.T) goalAlertFixtures {
	fx := goalAlertFixtures{
		nutrition:       mockUsecase.NewMockNutritionUsecase(t),
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		notificationSvc: mockSvc.NewMockNotificationService(t),
	}
	fx.service = NewGoalAlertService(GoalAlertServiceParams{
		Nutrition:       fx.nutrition,
		DeviceRepo:      fx.deviceRepo,
		NotificationSvc: fx.notificationSvc,
		Logger:          newDiscardLogger(),
	})

	return fx
}

func dailyWith(consumed, target int) *usecase.DailyNutrition {
	return &usecase.DailyNutrition{
		Consumed: nutrition.Value{Calories: consumed},
		Target:   nutrition.Value{Calories: target},
	}
}

func TestGoalAlertService_CrossingTargetNotifies(t *testing.T) {
	fx := createTestGoalAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	loggedAt := time.Date(2024, time.March, 6, 19, 0, 0, 0, time.UTC)
	event := &service.MealLoggedEvent{MealID: "m1", UserID: userID.String(), MealName: "Dinner", TotalCalories: 700, LoggedAt: loggedAt}

	fx.nutrition.EXPECT().Daily(ctx, userID, loggedAt).Return(dailyWith(2100, 2000), nil)
	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, userID).Return([]*entity.UserDevice{
		{FCMToken: "token-a"}, {FCMToken: "token-b"},
	}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, "Daily calorie goal reached", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 1, []string{"token-b"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-b"}).Return(int64(1), nil)

	result, err := fx.service.HandleMealLogged(ctx, event)
	require.NoError(t, err)
	assert.True(t, result.GoalReached)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, int64(1), result.DevicesDisabled)
}

func TestGoalAlertService_NoAlert(t *testing.T) {
	tests := []struct {
		name     string
		consumed int
		target   int
		meal     int
	}{
		{"below target", 1500, 2000, 500},
		{"already past before this meal", 2600, 2000, 300},
		{"no target", 900, 0, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGoalAlertService(t)

			ctx := context.Background()
			userID := uuid.New()
			loggedAt := time.Date(2024, time.March, 6, 8, 0, 0, 0, time.UTC)

			fx.nutrition.EXPECT().Daily(ctx, userID, loggedAt).Return(dailyWith(tt.consumed, tt.target), nil)

			result, err := fx.service.HandleMealLogged(ctx, &service.MealLoggedEvent{
				UserID: userID.String(), TotalCalories: tt.meal, LoggedAt: loggedAt,
			})
			require.NoError(t, err)
			assert.False(t, result.GoalReached)
		})
	}
}

func TestGoalAlertService_InvalidEvents(t *testing.T) {
	fx := createTestGoalAlertService(t)

	ctx := context.Background()

	_, err := fx.service.HandleMealLogged(ctx, nil)
	assert.ErrorIs(t, err, usecase.ErrInvalidEvent)

	_, err = fx.service.HandleMealLogged(ctx, &service.MealLoggedEvent{UserID: "not-a-uuid"})
	assert.ErrorIs(t, err, usecase.ErrInvalidEvent)

	userID := uuid.New()
	loggedAt := time.Date(2024, time.March, 6, 8, 0, 0, 0, time.UTC)
	fx.nutrition.EXPECT().Daily(ctx, userID, loggedAt).Return(nil, domainerrors.ErrUserNotFound)

	_, err = fx.service.HandleMealLogged(ctx, &service.MealLoggedEvent{UserID: userID.String(), LoggedAt: loggedAt})
	assert.ErrorIs(t, err, usecase.ErrInvalidEvent)
}

func TestGoalAlertService_TransientFailureIsRetryable(t *testing.T) {
	fx := createTestGoalAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	loggedAt := time.Date(2024, time.March, 6, 8, 0, 0, 0, time.UTC)

	fx.nutrition.EXPECT().Daily(ctx, userID, loggedAt).Return(nil, errors.New("connection reset"))

	_, err := fx.service.HandleMealLogged(ctx, &service.MealLoggedEvent{UserID: userID.String(), LoggedAt: loggedAt})
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrInvalidEvent)
}

func TestGoalAlertService_BatchesTokens(t *testing.T) {
	fx := createTestGoalAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	loggedAt := time.Date(2024, time.March, 6, 8, 0, 0, 0, time.UTC)

	devices := make([]*entity.UserDevice, notificationBatchSize+2)
	for i := range devices {
		devices[i] = &entity.UserDevice{FCMToken: uuid.NewString()}
	}

	fx.nutrition.EXPECT().Daily(ctx, userID, loggedAt).Return(dailyWith(2050, 2000), nil)
	fx.deviceRepo.EXPECT().ListActiveByUser(ctx, userID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == notificationBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(notificationBatchSize, 0, nil, nil).Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 2 }), mock.Anything, mock.Anything, mock.Anything).
		Return(2, 0, nil, nil).Once()

	result, err := fx.service.HandleMealLogged(ctx, &service.MealLoggedEvent{UserID: userID.String(), TotalCalories: 300, LoggedAt: loggedAt})
	require.NoError(t, err)
	assert.Equal(t, notificationBatchSize+2, result.Sent)
}
