package service

import (
	"context"
	"time"
)

// MealLoggedEvent is published after a meal was stored.
type MealLoggedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	MealID        string    `json:"meal_id"`
	UserID        string    `json:"user_id"`
	MealName      string    `json:"meal_name"`
	TotalCalories int       `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalFat      float64   `json:"total_fat"`
	TotalCarbs    float64   `json:"total_carbs"`
	LoggedAt      time.Time `json:"logged_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMealLogged publishes a meal event for async processing
	PublishMealLogged(ctx context.Context, event *MealLoggedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
