package usecase

import (
	"context"

	"gymtrack/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrInvalidEvent marks an event that can never be processed. Retrying it is pointless.
var ErrInvalidEvent = errors.New("invalid event")

// GoalAlertResult summarizes one processed event.
type GoalAlertResult struct {
	GoalReached     bool
	Sent            int
	Failed          int
	DevicesDisabled int64
}

// GoalAlertUsecase notifies users when a logged meal takes them past their calorie target.
type GoalAlertUsecase interface {
	HandleMealLogged(ctx context.Context, event *service.MealLoggedEvent) (*GoalAlertResult, error)
}
