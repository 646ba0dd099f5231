// Package firestore contains the concrete implementation of the persistence
// layer on top of the Firestore document store, including the live snapshot
// subscriptions.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
)

const addressCollection = "addresses"

const commentCollection = "comments"

// NewClient opens the Firestore client from the shared Firebase app.
// A nil app (backend not configured) yields a nil client; the repositories
// treat a nil client as the fail-fast configuration gate.
func NewClient(ctx context.Context, app *firebase.App, logger *slog.Logger) (*firestore.Client, error) {
	if app == nil {
		return nil, nil
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Firestore client")
	}

	logger.Info("Firestore client initialized")

	return client, nil
}
