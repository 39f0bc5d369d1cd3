package nutrition

import (
	"math"

	"gymtrack/internal/domain/entity"
)

// Scale converts a food's per-100 profile to the given quantity.
// Absolute foods already carry the macros for their quantity and are returned unchanged.
// Only calories are rounded, half away from zero.
func Scale(food entity.Food, quantity float64, absolute bool) Value {
	if absolute {
		return FromFood(food)
	}

	ratio := quantity / ReferenceQuantity

	return Value{
		Calories: int(math.Round(float64(food.Calories) * ratio)),
		Protein:  food.Protein * ratio,
		Fat:      food.Fat * ratio,
		Carbs:    food.Carbs * ratio,
	}
}

// ValidateQuantity rejects negative, NaN and infinite quantities. Zero is allowed.
func ValidateQuantity(quantity float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 0 {
		return &QuantityError{Quantity: quantity}
	}

	return nil
}
