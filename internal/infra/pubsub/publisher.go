// Package pubsub publishes meal_logged events for the nutrition worker.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"gymtrack/config"
	"gymtrack/internal/domain/constants"
	"gymtrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher selected by pubsub.provider and closes it on stop.
// An empty or "noop" provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	provider := constants.PubSubProviderNoop
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}
	logger = logger.With(slog.String("component", "pubsub"), slog.String("provider", provider))

	switch provider {
	case constants.PubSubProviderNoop:
		logger.Info("Meal events will not be published")

		return discardPublisher{logger: logger}, nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return newLocalForwarder(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return newGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", provider)
	}
}

// encodeEvent returns the message body and the attributes the worker filters on.
func encodeEvent(event *service.MealLoggedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode meal event")
	}

	attrs := map[string]string{
		constants.AttrEventType: constants.EventTypeMealLogged,
		"meal_id":               event.MealID,
		"user_id":               event.UserID,
	}
	if event.RequestID != "" {
		attrs[constants.AttrRequestID] = event.RequestID
	}

	return data, attrs, nil
}

type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishMealLogged(ctx context.Context, event *service.MealLoggedEvent) error {
	p.logger.DebugContext(ctx, "Meal event dropped", slog.String("mealID", event.MealID))

	return nil
}

func (discardPublisher) Close() error { return nil }
