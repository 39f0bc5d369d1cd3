package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"gymtrack/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/meal-logged"

// PushMessage is the body Pub/Sub push subscriptions deliver.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localForwarder imitates a push subscription by posting straight to the worker.
type localForwarder struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func newLocalForwarder(endpoint string, logger *slog.Logger) *localForwarder {
	return &localForwarder{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

func (f *localForwarder) PublishMealLogged(ctx context.Context, event *service.MealLoggedEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var msg PushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = event.MealID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to encode push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach worker")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker answered %d", resp.StatusCode)
	}

	f.logger.DebugContext(ctx, "Meal event forwarded", slog.String("mealID", event.MealID))

	return nil
}

func (*localForwarder) Close() error { return nil }
