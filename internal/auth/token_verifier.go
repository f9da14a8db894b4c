package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// TokenVerifier checks a client-supplied ID token and returns the account uid
// it belongs to.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

type FirebaseTokenVerifier struct {
	client *fbauth.Client
}

func NewFirebaseTokenVerifier(ctx context.Context, credentialsFile string) (*FirebaseTokenVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firebase Auth client: %w", err)
	}
	return &FirebaseTokenVerifier{client: client}, nil
}

func (v *FirebaseTokenVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %w", err)
	}
	return token.UID, nil
}
