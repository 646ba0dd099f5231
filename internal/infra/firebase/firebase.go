// Package firebase bootstraps the shared Firebase app used by the Firestore
// repositories and the token verifier.
package firebase

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"placemark/config"
)

// NewApp initializes the Firebase app when the backend is configured.
// With configuration absent it returns nil and the dependent adapters stay
// inert: every gated operation then fails fast without network I/O.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	if !cfg.Firebase.Configured() {
		logger.Warn("Firebase not configured, backend-dependent features are disabled")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
