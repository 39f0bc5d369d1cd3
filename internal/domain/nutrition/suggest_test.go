package nutrition

import (
	"testing"

	"gymtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitsRemaining(t *testing.T) {
	t.Parallel()

	foods := []entity.Food{
		{ID: "pho", Name: "Pho", Calories: 400, Protein: 20},
		{ID: "banh-mi", Name: "Banh Mi", Calories: 250, Protein: 10},
		{ID: "che", Name: "Che", Calories: 150},
	}

	tests := []struct {
		name      string
		remaining Value
		quantity  float64
		wantIDs   []string
	}{
		{name: "everything fits", remaining: Value{Calories: 500}, quantity: 100, wantIDs: []string{"pho", "banh-mi", "che"}},
		{name: "exact budget fits", remaining: Value{Calories: 250}, quantity: 100, wantIDs: []string{"banh-mi", "che"}},
		{name: "portion scales calories", remaining: Value{Calories: 300}, quantity: 200, wantIDs: []string{"che"}},
		{name: "budget used up", remaining: Value{Calories: 0}, quantity: 100, wantIDs: []string{}},
		{name: "over target", remaining: Value{Calories: -120}, quantity: 100, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FitsRemaining(foods, tt.remaining, tt.quantity)

			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.Food.ID)
				assert.InDelta(t, tt.quantity, s.Quantity, 1e-9)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFitsRemaining_ScalesNutrition(t *testing.T) {
	t.Parallel()

	got := FitsRemaining([]entity.Food{{ID: "pho", Calories: 400, Protein: 20, Fat: 5, Carbs: 60}}, Value{Calories: 1000}, 150)
	require.Len(t, got, 1)
	assert.Equal(t, 600, got[0].Nutrition.Calories)
	assert.InDelta(t, 30.0, got[0].Nutrition.Protein, 1e-9)
	assert.InDelta(t, 90.0, got[0].Nutrition.Carbs, 1e-9)
}
