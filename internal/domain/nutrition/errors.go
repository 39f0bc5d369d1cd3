package nutrition

import (
	"fmt"

	"gymtrack/internal/errors"
)

// ErrMalformedQuantity is returned when a basket quantity is negative or not a finite number.
var ErrMalformedQuantity = errors.New("malformed quantity")

// QuantityError carries the rejected quantity.
type QuantityError struct {
	Quantity float64
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("malformed quantity: %v", e.Quantity)
}

// Is makes errors.Is(err, ErrMalformedQuantity) match.
func (e *QuantityError) Is(target error) bool {
	return target == ErrMalformedQuantity
}
