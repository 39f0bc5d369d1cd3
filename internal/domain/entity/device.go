package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform of a push device.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// UserDevice is a phone registered for goal alerts.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"-"`
	DeviceID  string    `json:"device_id"` // Identifier chosen by the client app.
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
