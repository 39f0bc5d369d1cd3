package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gymtrack/config"
	"gymtrack/internal/domain/constants"
	"gymtrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, p service.EventPublisher)
	}{
		{
			name: "missing section disables publishing",
			cfg:  nil,
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, discardPublisher{}, p)
				assert.NoError(t, p.PublishMealLogged(context.Background(), &service.MealLoggedEvent{MealID: "m"}))
			},
		},
		{
			name: "local forwarder",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push/meal-logged"},
			check: func(t *testing.T, p service.EventPublisher) {
				f, ok := p.(*localForwarder)
				require.True(t, ok)
				assert.Equal(t, "http://localhost:8081/push/meal-logged", f.endpoint)
			},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "localEndpoint",
		},
		{
			name:    "google without topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"},
			wantErr: "topicId",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: `"kafka"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newPublisher(context.Background(), tt.cfg, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	_, attrs, err := encodeEvent(&service.MealLoggedEvent{MealID: "m1", UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, constants.EventTypeMealLogged, attrs[constants.AttrEventType])
	assert.Equal(t, "m1", attrs["meal_id"])
	_, hasRequestID := attrs[constants.AttrRequestID]
	assert.False(t, hasRequestID)
}
