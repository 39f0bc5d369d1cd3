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

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

// Create inserts the meal row and its items. Callers that need atomicity run it inside the transaction manager.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("meal owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required meal information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt
	for i, itemM := range mealM.Items {
		if i < len(meal.Items) {
			meal.Items[i].ID = itemM.ID
			meal.Items[i].MealID = mealM.ID
		}
	}

	return nil
}

// FindByID retrieves a meal with its items.
func (repo *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var mealM model.MealModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal by id")
	}

	return toMealDomain(&mealM), nil
}

// ListByUser returns meal headers, newest first.
func (repo *mealRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Meal, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var mealModels []*model.MealModel
	if err := query.Find(&mealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meals by user")
	}

	meals := make([]*entity.Meal, 0, len(mealModels))
	for _, mealM := range mealModels {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// Delete removes a meal. Items go with it through the cascading foreign key.
func (repo *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MealModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meal")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	items := make([]*entity.MealItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.MealItem{
			ID:          itemM.ID,
			MealID:      itemM.MealID,
			FoodID:      itemM.FoodID,
			FoodName:    itemM.FoodName,
			Quantity:    itemM.Quantity,
			PortionSize: itemM.PortionSize,
			Calories:    itemM.Calories,
			Protein:     itemM.Protein,
			Fat:         itemM.Fat,
			Carbs:       itemM.Carbs,
		})
	}

	return &entity.Meal{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          entity.MealType(data.MealName),
		TotalCalories: data.TotalCalories,
		TotalProtein:  data.TotalProtein,
		TotalFat:      data.TotalFat,
		TotalCarbs:    data.TotalCarbs,
		Items:         items,
		CreatedAt:     data.CreatedAt,
	}
}

func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	items := make([]*model.MealItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.MealItemModel{
			ID:          item.ID,
			MealID:      data.ID,
			FoodID:      item.FoodID,
			FoodName:    item.FoodName,
			Quantity:    item.Quantity,
			PortionSize: item.PortionSize,
			Calories:    item.Calories,
			Protein:     item.Protein,
			Fat:         item.Fat,
			Carbs:       item.Carbs,
		})
	}

	return &model.MealModel{
		ID:            data.ID,
		UserID:        data.UserID,
		MealName:      data.Name.String(),
		TotalCalories: data.TotalCalories,
		TotalProtein:  data.TotalProtein,
		TotalFat:      data.TotalFat,
		TotalCarbs:    data.TotalCarbs,
		CreatedAt:     data.CreatedAt,
		Items:         items,
	}
}
