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
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Upsert inserts a device or, on a (user_id, device_id) clash, refreshes its token and reactivates it.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)
	deviceM.IsActive = true

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	// The returned row id is the existing one when the conflict branch ran.
	var stored model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", deviceM.UserID, deviceM.DeviceID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload device")
	}

	*device = *toDeviceDomain(&stored)

	return nil
}

// FindByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// ListByUser retrieves all devices for a specific user (including inactive, excluding soft-deleted).
func (repo *deviceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.list(ctx, repo.db.Where("user_id = ?", userID))
}

// ListActiveByUser retrieves the active devices of a user.
func (repo *deviceRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.list(ctx, repo.db.Where("user_id = ? AND is_active = ?", userID, true))
}

func (repo *deviceRepository) list(ctx context.Context, scope *gorm.DB) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := scope.WithContext(ctx).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// Deactivate marks one device inactive.
func (repo *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens marks every device holding one of the tokens inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", tokens, true).
		Update("is_active", false)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices by token")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
