package repository

import (
	"context"

	"gymtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push targets of users.
type DeviceRepository interface {
	// Upsert registers a device or refreshes the token of an existing (user, device id) pair.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// ListByUser returns all devices of a user, inactive ones included.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// ListActiveByUser returns the devices that should receive pushes.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// Deactivate stops pushes to a device.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateByTokens stops pushes to every device holding one of the tokens.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)
}
