// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is used by the daily energy estimate.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ActivityLevel scales the resting energy estimate.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "Low"
	ActivityMedium ActivityLevel = "Medium"
	ActivityHigh   ActivityLevel = "High"
)

// Goal values with a fixed calorie adjustment. Any other text is kept as a custom goal.
const (
	GoalGain     = "Gain"
	GoalMaintain = "Maintain"
	GoalLose     = "Lose"
)

// DailyTarget holds the daily nutrition goal of a user.
type DailyTarget struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// User is the tracked person together with the body data the targets are derived from.
type User struct {
	ID            uuid.UUID     // The Global Unique Identifier (GUID) for the user.
	Name          string        // Display name.
	Gender        Gender        // Biological sex for the energy estimate.
	Age           int           // Years.
	Weight        float64       // Kilograms.
	Height        float64       // Centimeters.
	ActivityLevel ActivityLevel // Activity multiplier bucket.
	Goal          string        // Gain, Maintain, Lose or free text.
	Country       string        // Default origin filter for food listings.
	City          string        // Optional city filter.
	Language      string        // "en" or "vi".
	Target        DailyTarget   // Daily nutrition goal.
	CreatedAt     time.Time     // Timestamp of when this user was created.
	UpdatedAt     time.Time     // Timestamp of the last modification.
}
