package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends push notifications to multiple device tokens.
	// invalidTokens lists tokens the provider reported as unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
