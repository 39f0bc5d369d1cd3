package impl

import (
	"context"
	"testing"

	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/repository"
	mockRepo "gymtrack/internal/mocks/repository"
	mockSvc "gymtrack/internal/mocks/service"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type foodServiceFixtures struct {
	service        usecase.FoodUsecase
	foodRepo       *mockRepo.MockFoodRepository
	userRepo       *mockRepo.MockUserRepository
	preferenceRepo *mockRepo.MockPreferenceRepository
	qrCodeService  *mockSvc.MockQRCodeService
}

func createTestFoodService(t *testing.T) foodServiceFixtures {
	fx := foodServiceFixtures{
		foodRepo:       mockRepo.NewMockFoodRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		preferenceRepo: mockRepo.NewMockPreferenceRepository(t),
		qrCodeService:  mockSvc.NewMockQRCodeService(t),
	}
	fx.service = NewFoodService(FoodServiceParams{
		FoodRepo:       fx.foodRepo,
		UserRepo:       fx.userRepo,
		PreferenceRepo: fx.preferenceRepo,
		QRCodeService:  fx.qrCodeService,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestFoodService_ListFoods_LikedFirst(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Country: "Vietnam", City: "Hanoi"}, nil)
	fx.foodRepo.EXPECT().
		List(ctx, entity.FoodFilter{Country: "Vietnam", City: "Hanoi", Search: "a", Limit: 20}).
		Return([]*entity.Food{
			{ID: "1", Name: "Apple"},
			{ID: "2", Name: "Banana"},
			{ID: "3", Name: "Cherry"},
		}, nil)
	fx.preferenceRepo.EXPECT().LoadLikedFoods(ctx, userID).Return([]string{"1", "3"}, nil)

	foods, err := fx.service.ListFoods(ctx, userID, usecase.ListFoodsInput{Search: "a", Limit: 20})
	require.NoError(t, err)
	require.Len(t, foods, 3)
	assert.Equal(t, []string{"Apple", "Cherry", "Banana"}, []string{foods[0].Name, foods[1].Name, foods[2].Name})
	assert.True(t, foods[0].IsLiked)
	assert.False(t, foods[2].IsLiked)
}

func TestFoodService_ListFoods_ExplicitCountry(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.foodRepo.EXPECT().
		List(ctx, entity.FoodFilter{Country: "Japan"}).
		Return([]*entity.Food{}, nil)
	fx.preferenceRepo.EXPECT().LoadLikedFoods(ctx, userID).Return(nil, nil)

	foods, err := fx.service.ListFoods(ctx, userID, usecase.ListFoodsInput{Country: " Japan "})
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestFoodService_SetPreference(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	liked := true

	fx.foodRepo.EXPECT().FindByID(ctx, "pho").Return(&entity.Food{ID: "pho", Name: "Pho"}, nil)
	fx.preferenceRepo.EXPECT().LoadLikedFoods(ctx, userID).Return([]string{"banh-mi"}, nil)
	fx.preferenceRepo.EXPECT().LikeFood(ctx, userID, "pho").Return(nil)

	state, err := fx.service.SetPreference(ctx, userID, "pho", &liked)
	require.NoError(t, err)
	assert.True(t, state)
}

func TestFoodService_SetPreference_Toggle(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.foodRepo.EXPECT().FindByID(ctx, "pho").Return(&entity.Food{ID: "pho"}, nil)
	fx.preferenceRepo.EXPECT().LoadLikedFoods(ctx, userID).Return([]string{"pho"}, nil)
	fx.preferenceRepo.EXPECT().UnlikeFood(ctx, userID, "pho").Return(nil)

	state, err := fx.service.SetPreference(ctx, userID, "pho", nil)
	require.NoError(t, err)
	assert.False(t, state)
}

func TestFoodService_SetPreference_SaveFails(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()
	liked := true

	fx.foodRepo.EXPECT().FindByID(ctx, "pho").Return(&entity.Food{ID: "pho"}, nil)
	fx.preferenceRepo.EXPECT().LoadLikedFoods(ctx, userID).Return(nil, nil)
	fx.preferenceRepo.EXPECT().LikeFood(ctx, userID, "pho").Return(errors.New("timeout"))

	state, err := fx.service.SetPreference(ctx, userID, "pho", &liked)
	require.Error(t, err)
	assert.False(t, state)
}

func TestFoodService_SetPreference_UnknownFood(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	fx.foodRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrFoodNotFound)

	_, err := fx.service.SetPreference(ctx, uuid.New(), "ghost", nil)
	assert.Equal(t, domainerrors.ErrFoodNotFound, err)
}

func TestFoodService_CreateFood(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()

	fx.foodRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Food")).Return(nil)

	food, err := fx.service.CreateFood(ctx, usecase.CreateFoodInput{Name: " Protein bar ", Calories: 350, Protein: 30})
	require.NoError(t, err)
	assert.Equal(t, "Protein bar", food.Name)
	_, err = uuid.Parse(food.ID)
	assert.NoError(t, err)

	_, err = fx.service.CreateFood(ctx, usecase.CreateFoodInput{Name: "Bad", Fat: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFoodService_CreateFood_Duplicate(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	fx.foodRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateFood)

	_, err := fx.service.CreateFood(ctx, usecase.CreateFoodInput{ID: "oats", Name: "Oats"})
	assert.Equal(t, domainerrors.ErrFoodAlreadyExists, err)
}

func TestFoodService_LikedFoods(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().LoadLikedFoods(ctx, userID).Return([]string{"b", "a"}, nil)
	fx.foodRepo.EXPECT().FindByIDs(ctx, []string{"a", "b"}).Return([]*entity.Food{
		{ID: "b", Name: "Yogurt"}, {ID: "a", Name: "Eggs"},
	}, nil)

	foods, err := fx.service.LikedFoods(ctx, userID)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Eggs", foods[0].Name)
	assert.True(t, foods[1].IsLiked)
}

func TestFoodService_FoodQRCode(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.foodRepo.EXPECT().FindByID(ctx, "oats").Return(&entity.Food{ID: "oats"}, nil)
	fx.qrCodeService.EXPECT().GenerateFoodQR("oats").Return(png, nil)

	got, err := fx.service.FoodQRCode(ctx, "oats")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
