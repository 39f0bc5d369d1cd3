// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/repository"
	"gymtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user together with the computed daily target.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid body measurements")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update overwrites the profile and target of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(userM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Name:          data.Name,
		Gender:        entity.Gender(data.Gender),
		Age:           data.Age,
		Weight:        data.Weight,
		Height:        data.Height,
		ActivityLevel: entity.ActivityLevel(data.ActivityLevel),
		Goal:          data.Goal,
		Country:       data.Country,
		City:          data.City,
		Language:      data.Language,
		Target: entity.DailyTarget{
			Calories: data.DailyCalories,
			Protein:  data.DailyProtein,
			Fat:      data.DailyFat,
			Carbs:    data.DailyCarbs,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Name:          data.Name,
		Gender:        string(data.Gender),
		Age:           data.Age,
		Weight:        data.Weight,
		Height:        data.Height,
		ActivityLevel: string(data.ActivityLevel),
		Goal:          data.Goal,
		Country:       data.Country,
		City:          data.City,
		Language:      data.Language,
		DailyCalories: data.Target.Calories,
		DailyProtein:  data.Target.Protein,
		DailyFat:      data.Target.Fat,
		DailyCarbs:    data.Target.Carbs,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
