package postgres

import (
	"context"
	"strings"

	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/repository"
	"gymtrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{db: db}
}

// List returns the foods of an origin, optionally narrowed by a name search.
func (repo *foodRepository) List(ctx context.Context, filter entity.FoodFilter) ([]*entity.Food, error) {
	query := repo.db.WithContext(ctx).Model(&model.FoodModel{})

	if filter.Country != "" {
		query = query.Where("LOWER(country) = ?", strings.ToLower(filter.Country))
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(filter.City))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(search)+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var foodModels []*model.FoodModel
	if err := query.Order("name ASC").Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list foods")
	}

	return toFoodsDomain(foodModels), nil
}

// FindByID retrieves a single food.
func (repo *foodRepository) FindByID(ctx context.Context, id string) (*entity.Food, error) {
	var foodM model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by id")
	}

	return toFoodDomain(&foodM), nil
}

// FindByIDs retrieves the known foods among ids.
func (repo *foodRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Food, error) {
	if len(ids) == 0 {
		return []*entity.Food{}, nil
	}

	var foodModels []*model.FoodModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find foods by ids")
	}

	return toFoodsDomain(foodModels), nil
}

// Create persists a food profile.
func (repo *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	if err := repo.db.WithContext(ctx).Create(foodM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFood
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("food macros must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food")
	}

	return nil
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

// --- Mapper Functions ---

func toFoodsDomain(foodModels []*model.FoodModel) []*entity.Food {
	foods := make([]*entity.Food, 0, len(foodModels))
	for _, foodM := range foodModels {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods
}

func toFoodDomain(data *model.FoodModel) *entity.Food {
	if data == nil {
		return nil
	}

	return &entity.Food{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Calories:    data.Calories,
		Protein:     data.Protein,
		Fat:         data.Fat,
		Carbs:       data.Carbs,
		Country:     data.Country,
		City:        data.City,
	}
}

func fromFoodDomain(data *entity.Food) *model.FoodModel {
	if data == nil {
		return nil
	}

	return &model.FoodModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Calories:    data.Calories,
		Protein:     data.Protein,
		Fat:         data.Fat,
		Carbs:       data.Carbs,
		Country:     data.Country,
		City:        data.City,
	}
}
