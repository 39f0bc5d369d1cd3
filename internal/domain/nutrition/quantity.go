package nutrition

import (
	"strconv"
	"strings"
)

// ParseQuantity reads the numeric part of a quantity label such as "150g" or "1.5 cups".
// Labels without a readable number fall back to the reference quantity.
// An explicit zero stays zero.
func ParseQuantity(label string) float64 {
	var b strings.Builder
	for _, r := range label {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	q, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return ReferenceQuantity
	}

	return q
}
