package nutrition

import "gymtrack/internal/domain/entity"

// Suggestion is a catalog food at the portion it would be eaten in.
type Suggestion struct {
	Food      entity.Food `json:"food"`
	Quantity  float64     `json:"quantity"`
	Nutrition Value       `json:"nutrition"`
}

// FitsRemaining keeps the foods whose portion of quantity stays within the remaining calories.
// Input order is preserved. Nothing fits once the calorie budget is used up.
func FitsRemaining(foods []entity.Food, remaining Value, quantity float64) []Suggestion {
	if remaining.Calories <= 0 {
		return []Suggestion{}
	}

	out := make([]Suggestion, 0, len(foods))
	for _, food := range foods {
		value := Scale(food, quantity, false)
		if value.Calories > remaining.Calories {
			continue
		}
		out = append(out, Suggestion{Food: food, Quantity: quantity, Nutrition: value})
	}

	return out
}
