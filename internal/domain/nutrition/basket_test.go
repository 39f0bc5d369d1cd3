package nutrition

import (
	"math"
	"testing"

	"gymtrack/internal/domain/entity"
	"gymtrack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rice   = entity.Food{ID: "rice", Name: "Rice", Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28}
	banana = entity.Food{ID: "banana", Name: "Banana", Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 23}
)

func TestBasket_AddTwiceKeepsOneLine(t *testing.T) {
	b := NewBasket()
	require.NoError(t, b.Add(rice, 100, false))
	require.NoError(t, b.Add(rice, 250, false))

	require.Equal(t, 1, b.Len())
	line, ok := b.Line("rice")
	require.True(t, ok)
	assert.InDelta(t, 250.0, line.Quantity, 1e-9)
}

func TestBasket_AddKeepsInsertionOrder(t *testing.T) {
	b := NewBasket()
	require.NoError(t, b.AddDefault(rice))
	require.NoError(t, b.AddDefault(banana))
	require.NoError(t, b.Add(rice, 50, false))

	lines := b.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "rice", lines[0].Food.ID)
	assert.Equal(t, "banana", lines[1].Food.ID)
	assert.InDelta(t, ReferenceQuantity, lines[1].Quantity, 1e-9)
}

func TestBasket_AbsoluteLineIsFixed(t *testing.T) {
	plan := entity.Food{ID: "plan-1", Name: "Oats", Calories: 300, Protein: 10, Fat: 6, Carbs: 54}

	b := NewBasket()
	require.NoError(t, b.Add(plan, 80, true))

	require.NoError(t, b.UpdateQuantity("plan-1", 500))
	line, _ := b.Line("plan-1")
	assert.InDelta(t, 80.0, line.Quantity, 1e-9)

	require.NoError(t, b.Add(plan, 20, false))
	line, _ = b.Line("plan-1")
	assert.True(t, line.Absolute)
	assert.InDelta(t, 80.0, line.Quantity, 1e-9)

	assert.Equal(t, 300, b.SnapshotTotals().Calories)
}

func TestBasket_UpdateQuantity(t *testing.T) {
	b := NewBasket()
	require.NoError(t, b.AddDefault(rice))

	require.NoError(t, b.UpdateQuantity("rice", 200))
	assert.Equal(t, 260, b.SnapshotTotals().Calories)

	require.NoError(t, b.UpdateQuantity("missing", 10))
	assert.Equal(t, 1, b.Len())
}

func TestBasket_RejectsMalformedQuantity(t *testing.T) {
	b := NewBasket()
	require.NoError(t, b.AddDefault(rice))

	for _, q := range []float64{-5, math.NaN(), math.Inf(1)} {
		err := b.Add(banana, q, false)
		assert.True(t, errors.Is(err, ErrMalformedQuantity))

		err = b.UpdateQuantity("rice", q)
		assert.True(t, errors.Is(err, ErrMalformedQuantity))
	}

	assert.Equal(t, 1, b.Len())
	line, _ := b.Line("rice")
	assert.InDelta(t, 100.0, line.Quantity, 1e-9)
}

func TestBasket_AddThenRemoveIsZero(t *testing.T) {
	b := NewBasket()
	require.NoError(t, b.Add(rice, 100, false))
	b.Remove("rice")

	assert.True(t, b.SnapshotTotals().IsZero())
	assert.Equal(t, 0, b.Len())

	b.Remove("rice")
	assert.Equal(t, 0, b.Len())
}

func TestBasket_Clear(t *testing.T) {
	b := NewBasket()
	require.NoError(t, b.AddDefault(rice))
	require.NoError(t, b.AddDefault(banana))

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Lines())
	assert.True(t, b.SnapshotTotals().IsZero())
}

func TestBasket_LinesIsACopy(t *testing.T) {
	b := NewBasket()
	require.NoError(t, b.AddDefault(rice))

	lines := b.Lines()
	lines[0].Quantity = 999

	line, _ := b.Line("rice")
	assert.InDelta(t, 100.0, line.Quantity, 1e-9)
}
