package notification

import (
	"context"
	"log/slog"

	"gymtrack/config"
	"gymtrack/internal/domain/service"

	"go.uber.org/fx"
)

// ServiceParams holds dependencies for the notification service, injected by Fx.
type ServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService uses Firebase when configured and falls back to logging.
func NewNotificationService(params ServiceParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Info("Firebase not configured, push notifications are only logged")

		return NewLogService(params.Logger), nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}
