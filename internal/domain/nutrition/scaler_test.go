package nutrition

import (
	"math"
	"testing"

	"gymtrack/internal/domain/entity"
	"gymtrack/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestScale(t *testing.T) {
	t.Parallel()

	food := entity.Food{ID: "f1", Name: "Rice", Calories: 200, Protein: 10, Fat: 5, Carbs: 20}

	tests := []struct {
		name     string
		food     entity.Food
		quantity float64
		absolute bool
		want     Value
	}{
		{
			name:     "scales by quantity over one hundred",
			food:     food,
			quantity: 150,
			want:     Value{Calories: 300, Protein: 15, Fat: 7.5, Carbs: 30},
		},
		{
			name:     "reference quantity returns stored values",
			food:     food,
			quantity: 100,
			want:     Value{Calories: 200, Protein: 10, Fat: 5, Carbs: 20},
		},
		{
			name:     "zero quantity yields zero",
			food:     food,
			quantity: 0,
			want:     Value{},
		},
		{
			name:     "absolute ignores quantity",
			food:     entity.Food{ID: "p1", Calories: 100, Protein: 3, Fat: 1, Carbs: 12},
			quantity: 37,
			absolute: true,
			want:     Value{Calories: 100, Protein: 3, Fat: 1, Carbs: 12},
		},
		{
			name:     "calories round half away from zero",
			food:     entity.Food{ID: "f2", Calories: 5},
			quantity: 50,
			want:     Value{Calories: 3},
		},
		{
			name:     "calories round down below half",
			food:     entity.Food{ID: "f3", Calories: 33},
			quantity: 10,
			want:     Value{Calories: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Scale(tt.food, tt.quantity, tt.absolute)
			assert.Equal(t, tt.want.Calories, got.Calories)
			assert.InDelta(t, tt.want.Protein, got.Protein, 1e-9)
			assert.InDelta(t, tt.want.Fat, got.Fat, 1e-9)
			assert.InDelta(t, tt.want.Carbs, got.Carbs, 1e-9)
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateQuantity(0))
	assert.NoError(t, ValidateQuantity(250.5))

	for _, q := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := ValidateQuantity(q)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedQuantity))
	}
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  float64
	}{
		{label: "150g", want: 150},
		{label: "100", want: 100},
		{label: "1.5 cups", want: 1.5},
		{label: "a handful", want: 100},
		{label: "", want: 100},
		{label: "0g", want: 0},
		{label: "0.0 cups", want: 0},
		{label: "1.2.3g", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, ParseQuantity(tt.label), 1e-9)
		})
	}
}
