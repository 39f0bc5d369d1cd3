package nutrition

import (
	"math"

	"gymtrack/internal/domain/entity"
)

var activityMultipliers = map[entity.ActivityLevel]float64{
	entity.ActivityLow:    1.375,
	entity.ActivityMedium: 1.55,
	entity.ActivityHigh:   1.725,
}

var goalAdjustments = map[string]float64{
	entity.GoalGain:     300,
	entity.GoalMaintain: 0,
	entity.GoalLose:     -500,
}

// Macro split of the daily calories and energy per gram.
const (
	proteinShare = 0.30
	fatShare     = 0.25
	carbsShare   = 0.45

	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarbs   = 4

	minDailyCalories = 1200
)

// IsValidActivityLevel reports whether level has a known multiplier.
func IsValidActivityLevel(level entity.ActivityLevel) bool {
	_, ok := activityMultipliers[level]

	return ok
}

// BMR is the Mifflin-St Jeor resting energy in kcal.
func BMR(gender entity.Gender, weightKG, heightCM float64, age int) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == entity.GenderMale {
		return bmr + 5
	}

	return bmr - 161
}

// DailyTarget derives a daily goal from the user's body data.
// Unknown activity levels count as Low and custom goals as Maintain.
func DailyTarget(u *entity.User) entity.DailyTarget {
	mult, ok := activityMultipliers[u.ActivityLevel]
	if !ok {
		mult = activityMultipliers[entity.ActivityLow]
	}

	calories := BMR(u.Gender, u.Weight, u.Height, u.Age)*mult + goalAdjustments[u.Goal]
	calories = math.Max(math.Round(calories), minDailyCalories)

	return entity.DailyTarget{
		Calories: int(calories),
		Protein:  roundTenth(calories * proteinShare / kcalPerGramProtein),
		Fat:      roundTenth(calories * fatShare / kcalPerGramFat),
		Carbs:    roundTenth(calories * carbsShare / kcalPerGramCarbs),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
