package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType names the slot of the day a meal was eaten in.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnack     MealType = "Snack"
)

// String returns the string representation of the MealType.
func (m MealType) String() string {
	return string(m)
}

// IsValid checks if the MealType is a valid value.
func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	default:
		return false
	}
}

// Meal is a submitted meal with its line items and totals snapshot.
type Meal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          MealType
	TotalCalories int
	TotalProtein  float64
	TotalFat      float64
	TotalCarbs    float64
	Items         []*MealItem
	CreatedAt     time.Time
}

// MealItem is one food of a meal with the macros it contributed.
type MealItem struct {
	ID          uuid.UUID
	MealID      uuid.UUID
	FoodID      string
	FoodName    string
	Quantity    float64
	PortionSize float64
	Calories    int
	Protein     float64
	Fat         float64
	Carbs       float64
}

// MealHistoryEntry is a past meal summary as returned by the history listing.
// CreatedAt keeps the loosely formatted timestamp string the record was stored with.
type MealHistoryEntry struct {
	ID            string  `json:"id"`
	Name          string  `json:"meal_name"`
	TotalCalories int     `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalFat      float64 `json:"total_fat"`
	TotalCarbs    float64 `json:"total_carbs"`
	CreatedAt     string  `json:"created_at"`
}
