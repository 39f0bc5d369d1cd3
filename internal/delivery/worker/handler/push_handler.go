// Package handler contains the Pub/Sub push handlers of the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gymtrack/config"
	deliverycontext "gymtrack/internal/delivery/context"
	"gymtrack/internal/domain/constants"
	"gymtrack/internal/domain/service"
	"gymtrack/internal/usecase"
	"gymtrack/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns MealLogged pushes into goal alerts.
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	verifier       TokenVerifier
	logger         *slog.Logger
	goalAlertUC    usecase.GoalAlertUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	GoalAlertUC usecase.GoalAlertUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an ID token, and develop runs without one.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   audience,
		verifier:       idtoken.Validate,
		logger:         params.Logger,
		goalAlertUC:    params.GoalAlertUC,
	}
}

// HandlePush acks with 200 on success and on messages that can never succeed,
// malformed payloads included. Transient failures answer 503 so Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	start := time.Now()
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message, dropping", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	if eventType := pushMsg.Message.Attributes[constants.AttrEventType]; eventType != "" && eventType != constants.EventTypeMealLogged {
		h.logger.Info("[Worker] Skipping unknown event type",
			slog.String("event_type", eventType),
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data, dropping",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	var event service.MealLoggedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse meal logged event, dropping",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing meal logged event",
		slog.String("meal_id", event.MealID),
		slog.String("user_id", event.UserID),
		slog.Int("total_calories", event.TotalCalories),
	)

	result, err := h.goalAlertUC.HandleMealLogged(ctx, &event)
	if err != nil {
		retryable := !errors.Is(err, usecase.ErrInvalidEvent)
		reqLogger.Error("[Worker] Failed to process meal logged event",
			slog.String("meal_id", event.MealID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Meal logged event processed",
		slog.String("meal_id", event.MealID),
		slog.Bool("goal_reached", result.GoalReached),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int64("devices_disabled", result.DevicesDisabled),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound request.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.MealLoggedEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken validates the Google-signed ID token of a push request.
// Without a configured audience the endpoint URL is expected.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.verifier(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
