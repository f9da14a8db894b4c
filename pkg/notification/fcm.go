package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Notifier sends a push message to a single device token.
type Notifier interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

type FcmNotifier struct {
	client *messaging.Client
}

// NewFcmNotifier initializes a Firebase app from the service account file and
// returns a notifier backed by Firebase Cloud Messaging.
func NewFcmNotifier(ctx context.Context, credentialsFile string) (*FcmNotifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firebase Messaging client: %w", err)
	}
	return &FcmNotifier{client: client}, nil
}

func (n *FcmNotifier) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := n.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	log.Debugf("FCM message sent: %s", response)
	return nil
}
