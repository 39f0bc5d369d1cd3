package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Gender        string    `gorm:"type:varchar(10);not null"`
	Age           int       `gorm:"not null"`
	Weight        float64   `gorm:"not null"`
	Height        float64   `gorm:"not null"`
	ActivityLevel string    `gorm:"type:varchar(20);not null"`
	Goal          string    `gorm:"type:varchar(100);not null"`
	Country       string    `gorm:"type:varchar(100);not null;default:''"`
	City          string    `gorm:"type:varchar(100);not null;default:''"`
	Language      string    `gorm:"type:varchar(5);not null;default:'en'"`
	DailyCalories int       `gorm:"not null"`
	DailyProtein  float64   `gorm:"not null"`
	DailyFat      float64   `gorm:"not null"`
	DailyCarbs    float64   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt   `gorm:"index"`
	LikedFoods    []LikedFoodModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
