package pubsub

import (
	"context"
	"log/slog"

	"gymtrack/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// newGooglePublisher fails fast when the topic does not exist.
func newGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*googlePublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", name)
	}

	logger.Info("Publishing meal events", slog.String("topic", name))

	return &googlePublisher{client: client, topic: client.Publisher(topicID), logger: logger}, nil
}

// PublishMealLogged blocks until the server acknowledges the message.
func (p *googlePublisher) PublishMealLogged(ctx context.Context, event *service.MealLoggedEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	id, err := p.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs}).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to publish meal event")
	}

	p.logger.DebugContext(ctx, "Meal event published", slog.String("mealID", event.MealID), slog.String("messageID", id))

	return nil
}

func (p *googlePublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
