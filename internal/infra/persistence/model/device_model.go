package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is a push target for goal alerts. A client device id is unique per user;
// devices are deactivated, never deleted.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_devices_client"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_devices_client"`
	FCMToken  string    `gorm:"column:fcm_token;type:varchar(255);not null;index"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserDeviceModel) TableName() string { return "user_devices" }
