package nutrition

import (
	"testing"

	"gymtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBMR(t *testing.T) {
	t.Parallel()

	// 10*80 + 6.25*180 - 5*30 + 5
	assert.InDelta(t, 1780.0, BMR(entity.GenderMale, 80, 180, 30), 1e-9)
	// 10*60 + 6.25*165 - 5*25 - 161
	assert.InDelta(t, 1345.25, BMR(entity.GenderFemale, 60, 165, 25), 1e-9)
}

func TestDailyTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		user     entity.User
		calories int
	}{
		{
			name:     "maintain medium",
			user:     entity.User{Gender: entity.GenderMale, Weight: 80, Height: 180, Age: 30, ActivityLevel: entity.ActivityMedium, Goal: entity.GoalMaintain},
			calories: 2759, // 1780 * 1.55
		},
		{
			name:     "gain adds surplus",
			user:     entity.User{Gender: entity.GenderMale, Weight: 80, Height: 180, Age: 30, ActivityLevel: entity.ActivityMedium, Goal: entity.GoalGain},
			calories: 3059,
		},
		{
			name:     "lose subtracts deficit",
			user:     entity.User{Gender: entity.GenderMale, Weight: 80, Height: 180, Age: 30, ActivityLevel: entity.ActivityMedium, Goal: entity.GoalLose},
			calories: 2259,
		},
		{
			name:     "custom goal and unknown activity fall back",
			user:     entity.User{Gender: entity.GenderMale, Weight: 80, Height: 180, Age: 30, ActivityLevel: "Extreme", Goal: "Run a marathon"},
			calories: 2448, // 1780 * 1.375 = 2447.5
		},
		{
			name:     "floor applies",
			user:     entity.User{Gender: entity.GenderFemale, Weight: 40, Height: 150, Age: 80, ActivityLevel: entity.ActivityLow, Goal: entity.GoalLose},
			calories: 1200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := DailyTarget(&tt.user)
			assert.Equal(t, tt.calories, target.Calories)
			assert.InDelta(t, float64(tt.calories)*0.30/4, target.Protein, 0.05)
			assert.InDelta(t, float64(tt.calories)*0.25/9, target.Fat, 0.05)
			assert.InDelta(t, float64(tt.calories)*0.45/4, target.Carbs, 0.05)
		})
	}
}
