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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	txUserRepo   *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		txUserRepo:   mockRepo.NewMockUserRepository(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.service = NewUserService(UserServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx userServiceFixtures) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
}

func validProfile() usecase.ProfileInput {
	return usecase.ProfileInput{
		Name:          "Lan",
		Gender:        entity.GenderFemale,
		Age:           28,
		Weight:        55,
		Height:        160,
		ActivityLevel: entity.ActivityMedium,
		Goal:          entity.GoalMaintain,
		Country:       "Vietnam",
	}
}

func TestUserService_Register(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectTransaction()
	fx.txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateAccessToken(userID, []string{"user"}).
		Return("access-token", nil)

	out, err := fx.service.Register(ctx, validProfile())
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "en", out.User.Language)
	// BMR 55kg/160cm/28y female = 1249, x1.55 = 1935.95
	assert.Equal(t, 1936, out.User.Target.Calories)
	assert.InDelta(t, 145.2, out.User.Target.Protein, 0.05)
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.ProfileInput)
	}{
		{"empty name", func(in *usecase.ProfileInput) { in.Name = " " }},
		{"unknown gender", func(in *usecase.ProfileInput) { in.Gender = "Other" }},
		{"unknown activity", func(in *usecase.ProfileInput) { in.ActivityLevel = "Extreme" }},
		{"zero weight", func(in *usecase.ProfileInput) { in.Weight = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			input := validProfile()
			tt.mutate(&input)

			_, err := fx.service.Register(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestUserService_UpdateProfile_RecomputesTarget(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Name: "Lan", Target: entity.DailyTarget{Calories: 1}}

	fx.expectTransaction()
	fx.txUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
	fx.txUserRepo.EXPECT().Update(ctx, stored).Return(nil)

	input := validProfile()
	input.Goal = entity.GoalLose

	user, err := fx.service.UpdateProfile(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, 1436, user.Target.Calories)
	assert.Equal(t, entity.GoalLose, user.Goal)
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectTransaction()
	fx.txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateProfile(ctx, userID, validProfile())
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}
