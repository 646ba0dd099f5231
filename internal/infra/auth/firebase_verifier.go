package auth

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"placemark/internal/domain/entity"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/service"
)

// tokenVerifier implements service.TokenVerifier with the Firebase Admin SDK.
type tokenVerifier struct {
	client *firebaseauth.Client
	logger *slog.Logger
}

// NewTokenVerifier is the constructor for tokenVerifier. A nil app (backend
// not configured) yields an inert verifier that rejects every token with the
// configuration error.
func NewTokenVerifier(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.TokenVerifier, error) {
	if app == nil {
		return &tokenVerifier{logger: logger}, nil
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &tokenVerifier{
		client: client,
		logger: logger,
	}, nil
}

// Verify validates the ID token and resolves it to an identity.
func (v *tokenVerifier) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	if v.client == nil {
		return nil, errors.WithStack(domainerrors.ErrBackendNotConfigured)
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	identity := &entity.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}

	return identity, nil
}
