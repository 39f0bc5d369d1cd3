package nutrition

import (
	"slices"

	"gymtrack/internal/domain/entity"
)

// Basket is the set of foods a user is composing into one meal.
// A food id appears at most once. Lines keep insertion order.
// Basket is not safe for concurrent use.
type Basket struct {
	lines []Line
}

// NewBasket returns an empty basket.
func NewBasket() *Basket {
	return &Basket{}
}

// AddDefault adds a food at the reference quantity.
func (b *Basket) AddDefault(food entity.Food) error {
	return b.Add(food, ReferenceQuantity, false)
}

// Add inserts a line for food, or updates quantity and absolute flag of the existing one.
// An existing absolute line is left untouched.
func (b *Basket) Add(food entity.Food, quantity float64, absolute bool) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}

	if i := b.indexOf(food.ID); i >= 0 {
		if b.lines[i].Absolute {
			return nil
		}
		b.lines[i].Quantity = quantity
		b.lines[i].Absolute = absolute

		return nil
	}

	b.lines = append(b.lines, Line{Food: food, Quantity: quantity, Absolute: absolute})

	return nil
}

// Remove deletes the line for foodID if present.
func (b *Basket) Remove(foodID string) {
	if i := b.indexOf(foodID); i >= 0 {
		b.lines = slices.Delete(b.lines, i, i+1)
	}
}

// UpdateQuantity changes the quantity of a scaled line.
// Missing and absolute lines are ignored.
func (b *Basket) UpdateQuantity(foodID string, quantity float64) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}

	i := b.indexOf(foodID)
	if i < 0 || b.lines[i].Absolute {
		return nil
	}
	b.lines[i].Quantity = quantity

	return nil
}

// Clear empties the basket.
func (b *Basket) Clear() {
	b.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (b *Basket) Lines() []Line {
	return slices.Clone(b.lines)
}

// Line returns the line for foodID.
func (b *Basket) Line(foodID string) (Line, bool) {
	if i := b.indexOf(foodID); i >= 0 {
		return b.lines[i], true
	}

	return Line{}, false
}

// Len returns the number of lines.
func (b *Basket) Len() int {
	return len(b.lines)
}

// SnapshotTotals recomputes the totals of the current lines.
func (b *Basket) SnapshotTotals() Value {
	return Totalize(b.lines)
}

func (b *Basket) indexOf(foodID string) int {
	return slices.IndexFunc(b.lines, func(l Line) bool { return l.Food.ID == foodID })
}
