package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel mirrors the 'meals' table with the totals snapshot taken at submission.
type MealModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_meals_user_created,priority:1"`
	MealName      string           `gorm:"type:varchar(20);not null"`
	TotalCalories int              `gorm:"not null"`
	TotalProtein  float64          `gorm:"not null"`
	TotalFat      float64          `gorm:"not null"`
	TotalCarbs    float64          `gorm:"not null"`
	CreatedAt     time.Time        `gorm:"index:idx_meals_user_created,priority:2,sort:desc"`
	Items         []*MealItemModel `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// MealItemModel mirrors the 'meal_items' table.
type MealItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MealID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodID      string    `gorm:"type:varchar(64);not null"`
	FoodName    string    `gorm:"type:varchar(200);not null"`
	Quantity    float64   `gorm:"not null"`
	PortionSize float64   `gorm:"not null;default:100"`
	Calories    int       `gorm:"not null"`
	Protein     float64   `gorm:"not null"`
	Fat         float64   `gorm:"not null"`
	Carbs       float64   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MealItemModel) TableName() string {
	return "meal_items"
}
