package impl

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/repository"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var supportedPlatforms = []string{entity.PlatformIOS, entity.PlatformAndroid}

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{deviceRepo: deviceRepo}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	device, err := newUserDevice(userID, info)
	if err != nil {
		return nil, err
	}

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to register device: %w", err)
	}

	return device, nil
}

// newUserDevice validates the client payload. Platform is matched case-insensitively.
func newUserDevice(userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if info == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("device info is required")
	}

	token := strings.TrimSpace(info.FCMToken)
	clientID := strings.TrimSpace(info.DeviceID)
	if token == "" || clientID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm_token and device_id are required")
	}

	platform := strings.ToLower(strings.TrimSpace(info.Platform))
	if !slices.Contains(supportedPlatforms, platform) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("platform must be ios or android")
	}

	return &entity.UserDevice{
		UserID:   userID,
		FCMToken: token,
		DeviceID: clientID,
		Platform: platform,
		IsActive: true,
	}, nil
}

func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return devices, nil
}

// DeactivateDevice refuses devices owned by someone else.
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return deviceLookupError(err)
	}
	if device.UserID != userID {
		return domainerrors.ErrDeviceOwnershipViolation
	}

	if err := s.deviceRepo.Deactivate(ctx, deviceID); err != nil {
		return deviceLookupError(err)
	}

	return nil
}

func deviceLookupError(err error) error {
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound
	}

	return fmt.Errorf("failed to deactivate device: %w", err)
}
