package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymtrack/internal/domain/constants"
	"gymtrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalForwarder_PublishMealLogged(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := newLocalForwarder(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	event := &service.MealLoggedEvent{
		RequestID:     "req-1",
		MealID:        "meal-1",
		UserID:        "user-1",
		MealName:      "Lunch",
		TotalCalories: 640,
		LoggedAt:      time.Date(2025, 3, 6, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishMealLogged(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "meal-1", received.Message.MessageID)
	assert.Equal(t, constants.EventTypeMealLogged, received.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "req-1", received.Message.Attributes[constants.AttrRequestID])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.MealLoggedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 640, decoded.TotalCalories)
	assert.Equal(t, "Lunch", decoded.MealName)
}

func TestLocalForwarder_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := newLocalForwarder(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishMealLogged(context.Background(), &service.MealLoggedEvent{MealID: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
