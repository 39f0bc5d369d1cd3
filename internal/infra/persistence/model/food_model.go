package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodModel mirrors the 'foods' table. Macros are per 100 units.
type FoodModel struct {
	ID          string  `gorm:"type:varchar(64);primaryKey"`
	Name        string  `gorm:"type:varchar(200);not null;index"`
	Description string  `gorm:"type:text"`
	Calories    int     `gorm:"not null;check:calories >= 0"`
	Protein     float64 `gorm:"not null;check:protein >= 0"`
	Fat         float64 `gorm:"not null;check:fat >= 0"`
	Carbs       float64 `gorm:"not null;check:carbs >= 0"`
	Country     string  `gorm:"type:varchar(100);not null;index:idx_foods_origin"`
	City        string  `gorm:"type:varchar(100);not null;default:'';index:idx_foods_origin"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}

// LikedFoodModel mirrors the 'liked_foods' table, one row per liked (user, food).
type LikedFoodModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FoodID    string    `gorm:"type:varchar(64);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikedFoodModel) TableName() string {
	return "liked_foods"
}
