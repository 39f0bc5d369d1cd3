// Package nutrition holds the meal composition and aggregation rules:
// portion scaling, meal and daily totals, the selection basket and
// liked-food ordering. It does no I/O.
package nutrition

import "gymtrack/internal/domain/entity"

// ReferenceQuantity is the quantity a food's stored macros describe.
const ReferenceQuantity = 100.0

// Value is an immutable macro quadruple.
type Value struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Add returns the component-wise sum.
func (v Value) Add(o Value) Value {
	return Value{
		Calories: v.Calories + o.Calories,
		Protein:  v.Protein + o.Protein,
		Fat:      v.Fat + o.Fat,
		Carbs:    v.Carbs + o.Carbs,
	}
}

// Sub returns the component-wise difference. Components may go negative.
func (v Value) Sub(o Value) Value {
	return Value{
		Calories: v.Calories - o.Calories,
		Protein:  v.Protein - o.Protein,
		Fat:      v.Fat - o.Fat,
		Carbs:    v.Carbs - o.Carbs,
	}
}

// IsZero reports whether every component is zero.
func (v Value) IsZero() bool {
	return v == Value{}
}

// FromFood returns the stored macros of a food.
func FromFood(f entity.Food) Value {
	return Value{Calories: f.Calories, Protein: f.Protein, Fat: f.Fat, Carbs: f.Carbs}
}

// FromTarget converts a daily target.
func FromTarget(t entity.DailyTarget) Value {
	return Value{Calories: t.Calories, Protein: t.Protein, Fat: t.Fat, Carbs: t.Carbs}
}

// FromHistory returns the stored totals of a history entry.
func FromHistory(e entity.MealHistoryEntry) Value {
	return Value{Calories: e.TotalCalories, Protein: e.TotalProtein, Fat: e.TotalFat, Carbs: e.TotalCarbs}
}
