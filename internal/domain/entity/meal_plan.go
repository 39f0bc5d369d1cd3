package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealPlanFood is a suggested food whose macros already match its quantity.
type MealPlanFood struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// MealPlanSection groups the foods suggested for one meal slot.
type MealPlanSection struct {
	Foods  []MealPlanFood `json:"foods"`
	Totals DailyTarget    `json:"totals"`
}

// MealPlan is a generated daily plan for a user.
type MealPlan struct {
	UserID      uuid.UUID       `json:"user_id"`
	Breakfast   MealPlanSection `json:"breakfast"`
	Lunch       MealPlanSection `json:"lunch"`
	Dinner      MealPlanSection `json:"dinner"`
	Snacks      MealPlanSection `json:"snacks"`
	DailyTotals DailyTarget     `json:"daily_totals"`
	FetchedAt   time.Time       `json:"fetched_at"`
}

// Section returns the section for a meal type.
func (p *MealPlan) Section(mealType MealType) (*MealPlanSection, bool) {
	switch mealType {
	case MealTypeBreakfast:
		return &p.Breakfast, true
	case MealTypeLunch:
		return &p.Lunch, true
	case MealTypeDinner:
		return &p.Dinner, true
	case MealTypeSnack:
		return &p.Snacks, true
	default:
		return nil, false
	}
}
