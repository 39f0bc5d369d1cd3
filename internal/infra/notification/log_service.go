package notification

import (
	"context"
	"log/slog"

	"gymtrack/internal/domain/service"
)

// logService only logs pushes. Used when Firebase is not configured.
type logService struct {
	logger *slog.Logger
}

// NewLogService returns a NotificationService that records pushes in the log.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, _ map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.InfoContext(ctx, "[LogPush] Notification",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
	)

	return len(tokens), 0, nil, nil
}
