package postgres

import (
	"context"

	"gymtrack/internal/domain/repository"
	"gymtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

// LoadLikedFoods returns the liked food ids of a user.
func (repo *preferenceRepository) LoadLikedFoods(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var foodIDs []string

	if err := repo.db.WithContext(ctx).
		Model(&model.LikedFoodModel{}).
		Where("user_id = ?", userID).
		Order("food_id ASC").
		Pluck("food_id", &foodIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load liked foods")
	}

	return foodIDs, nil
}

// LikeFood inserts the (user, food) row, ignoring an existing one.
func (repo *preferenceRepository) LikeFood(ctx context.Context, userID uuid.UUID, foodID string) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.LikedFoodModel{UserID: userID, FoodID: foodID}).Error; err != nil {
		return errors.Wrap(err, "failed to like food")
	}

	return nil
}

// UnlikeFood deletes the (user, food) row if present.
func (repo *preferenceRepository) UnlikeFood(ctx context.Context, userID uuid.UUID, foodID string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Delete(&model.LikedFoodModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to unlike food")
	}

	return nil
}
