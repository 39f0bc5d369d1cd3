package impl

import (
	"context"
	"slices"
	"testing"
	"time"
	_ "time/tzdata"

	"gymtrack/config"
	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/nutrition"
	"gymtrack/internal/domain/repository"
	mockRepo "gymtrack/internal/mocks/repository"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNutritionService_Daily(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	mealRepo := mockRepo.NewMockMealRepository(t)
	svc := NewNutritionService(NutritionServiceParams{
		UserRepo: userRepo,
		MealRepo: mealRepo,
		Config:   newTestConfig(),
	})

	ctx := context.Background()
	userID := uuid.New()
	reference := time.Date(2024, time.March, 6, 20, 0, 0, 0, time.UTC)

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:     userID,
		Target: entity.DailyTarget{Calories: 2000, Protein: 150, Fat: 55.6, Carbs: 225},
	}, nil)
	mealRepo.EXPECT().ListByUser(ctx, userID, 50).Return([]*entity.Meal{
		{ID: uuid.New(), Name: entity.MealTypeDinner, TotalCalories: 900, TotalProtein: 60, TotalFat: 30, TotalCarbs: 90, CreatedAt: reference.Add(-time.Hour)},
		{ID: uuid.New(), Name: entity.MealTypeLunch, TotalCalories: 1300, TotalProtein: 70, TotalFat: 40, TotalCarbs: 120, CreatedAt: reference.Add(-7 * time.Hour)},
		{ID: uuid.New(), Name: entity.MealTypeDinner, TotalCalories: 700, CreatedAt: reference.AddDate(0, 0, -1)},
	}, nil)

	daily, err := svc.Daily(ctx, userID, reference)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-06", daily.Date)
	assert.Equal(t, 2, daily.MealCount)
	assert.Equal(t, nutrition.Value{Calories: 2200, Protein: 130, Fat: 70, Carbs: 210}, daily.Consumed)
	assert.Equal(t, -200, daily.Remaining.Calories)
	assert.InDelta(t, 20.0, daily.Remaining.Protein, 1e-9)
	assert.Equal(t, 2000, daily.Target.Calories)
}

func TestNutritionService_Daily_UsesConfiguredTimezone(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	mealRepo := mockRepo.NewMockMealRepository(t)
	cfg := newTestConfig()
	cfg.Nutrition = &config.NutritionConfig{HistoryLimit: 10, Timezone: "Asia/Ho_Chi_Minh"}
	svc := NewNutritionService(NutritionServiceParams{UserRepo: userRepo, MealRepo: mealRepo, Config: cfg})

	ctx := context.Background()
	userID := uuid.New()
	// 18:00 UTC on March 5 is already March 6 at UTC+7.
	reference := time.Date(2024, time.March, 5, 18, 0, 0, 0, time.UTC)

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	mealRepo.EXPECT().ListByUser(ctx, userID, 10).Return([]*entity.Meal{
		{ID: uuid.New(), Name: entity.MealTypeBreakfast, TotalCalories: 400, CreatedAt: reference.Add(-30 * time.Minute)},
		{ID: uuid.New(), Name: entity.MealTypeSnack, TotalCalories: 150, CreatedAt: reference.Add(-2 * time.Hour)},
	}, nil)

	daily, err := svc.Daily(ctx, userID, reference)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-06", daily.Date)
	assert.Equal(t, 400, daily.Consumed.Calories)
	require.Len(t, daily.Meals, 1)
	assert.Equal(t, "Breakfast", daily.Meals[0].Name)
}

func TestNutritionService_Daily_UserNotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewNutritionService(NutritionServiceParams{
		UserRepo: userRepo,
		MealRepo: mockRepo.NewMockMealRepository(t),
		Config:   newTestConfig(),
	})

	ctx := context.Background()
	userID := uuid.New()
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.Daily(ctx, userID, time.Now())
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

type suggestionFixture struct {
	service        usecase.NutritionUsecase
	userRepo       *mockRepo.MockUserRepository
	mealRepo       *mockRepo.MockMealRepository
	foodRepo       *mockRepo.MockFoodRepository
	preferenceRepo *mockRepo.MockPreferenceRepository
}

func createTestSuggestionService(t *testing.T) *suggestionFixture {
	t.Helper()

	fx := &suggestionFixture{
		userRepo:       mockRepo.NewMockUserRepository(t),
		mealRepo:       mockRepo.NewMockMealRepository(t),
		foodRepo:       mockRepo.NewMockFoodRepository(t),
		preferenceRepo: mockRepo.NewMockPreferenceRepository(t),
	}
	fx.service = NewNutritionService(NutritionServiceParams{
		UserRepo:       fx.userRepo,
		MealRepo:       fx.mealRepo,
		FoodRepo:       fx.foodRepo,
		PreferenceRepo: fx.preferenceRepo,
		Config:         newTestConfig(),
	})

	return fx
}

func TestNutritionService_Suggestions(t *testing.T) {
	reference := time.Date(2024, time.March, 6, 20, 0, 0, 0, time.UTC)
	user := &entity.User{
		Country: "Vietnam",
		City:    "Hanoi",
		Target:  entity.DailyTarget{Calories: 2000, Protein: 150, Fat: 60, Carbs: 220},
	}
	catalog := []*entity.Food{
		{ID: "pho", Name: "Pho", Calories: 450},
		{ID: "bun-cha", Name: "Bun Cha", Calories: 600},
		{ID: "banh-mi", Name: "Banh Mi", Calories: 300},
		{ID: "che", Name: "Che", Calories: 200},
	}

	tests := []struct {
		name          string
		consumed      int
		limit         int
		liked         []string
		wantRemaining int
		wantIDs       []string
	}{
		{
			name:          "liked first then by name",
			consumed:      1500,
			liked:         []string{"pho"},
			wantRemaining: 500,
			wantIDs:       []string{"pho", "banh-mi", "che"},
		},
		{
			name:          "limit applies after ordering",
			consumed:      1000,
			limit:         2,
			liked:         []string{"che"},
			wantRemaining: 1000,
			wantIDs:       []string{"che", "banh-mi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSuggestionService(t)
			ctx := context.Background()
			userID := uuid.New()
			u := *user
			u.ID = userID

			fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&u, nil)
			fx.mealRepo.EXPECT().ListByUser(ctx, userID, 50).Return([]*entity.Meal{
				{ID: uuid.New(), Name: entity.MealTypeLunch, TotalCalories: tt.consumed, CreatedAt: reference.Add(-6 * time.Hour)},
				{ID: uuid.New(), Name: entity.MealTypeDinner, TotalCalories: 1800, CreatedAt: reference.AddDate(0, 0, -1)},
			}, nil)
			fx.foodRepo.EXPECT().List(ctx, entity.FoodFilter{Country: "Vietnam", City: "Hanoi"}).Return(catalog, nil)
			fx.preferenceRepo.EXPECT().LoadLikedFoods(ctx, userID).Return(tt.liked, nil)

			got, err := fx.service.Suggestions(ctx, userID, reference, tt.limit)
			require.NoError(t, err)

			assert.Equal(t, "2024-03-06", got.Date)
			assert.Equal(t, tt.wantRemaining, got.Remaining.Calories)
			ids := make([]string, 0, len(got.Foods))
			for _, s := range got.Foods {
				ids = append(ids, s.Food.ID)
				assert.Equal(t, slices.Contains(tt.liked, s.Food.ID), s.Food.IsLiked)
				assert.LessOrEqual(t, s.Nutrition.Calories, tt.wantRemaining)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestNutritionService_Suggestions_TargetReached(t *testing.T) {
	fx := createTestSuggestionService(t)
	ctx := context.Background()
	userID := uuid.New()
	reference := time.Date(2024, time.March, 6, 20, 0, 0, 0, time.UTC)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Target: entity.DailyTarget{Calories: 1800}}, nil)
	fx.mealRepo.EXPECT().ListByUser(ctx, userID, 50).Return([]*entity.Meal{
		{ID: uuid.New(), Name: entity.MealTypeDinner, TotalCalories: 1900, CreatedAt: reference.Add(-time.Hour)},
	}, nil)

	got, err := fx.service.Suggestions(ctx, userID, reference, 0)
	require.NoError(t, err)
	assert.Equal(t, -100, got.Remaining.Calories)
	assert.Empty(t, got.Foods)
	assert.NotNil(t, got.Foods)
}

func TestNutritionService_Suggestions_Errors(t *testing.T) {
	reference := time.Date(2024, time.March, 6, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(fx *suggestionFixture, userID uuid.UUID)
		wantErr error
	}{
		{
			name: "unknown user",
			setup: func(fx *suggestionFixture, userID uuid.UUID) {
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
		{
			name: "catalog unavailable",
			setup: func(fx *suggestionFixture, userID uuid.UUID) {
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Target: entity.DailyTarget{Calories: 2000}}, nil)
				fx.mealRepo.EXPECT().ListByUser(mock.Anything, userID, 50).Return(nil, nil)
				fx.foodRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSuggestionService(t)
			userID := uuid.New()
			tt.setup(fx, userID)

			got, err := fx.service.Suggestions(context.Background(), userID, reference, 5)
			require.Error(t, err)
			assert.Nil(t, got)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			}
		})
	}
}
