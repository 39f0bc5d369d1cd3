package notification

import (
	"context"
	"fmt"

	"gymtrack/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxBatchSize is the FCM limit of tokens per multicast request.
const MaxBatchSize = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{client: client}, nil
}

// SendBatchNotification sends one multicast to at most MaxBatchSize tokens.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}

	if len(tokens) > MaxBatchSize {
		return 0, 0, nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}
