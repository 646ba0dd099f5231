package service

import (
	"context"

	"placemark/internal/domain/entity"
)

// IdentityChangeFunc is notified when the signed-in principal changes.
// It receives nil on sign-out.
type IdentityChangeFunc func(identity *entity.Identity)

// AuthResult is the outcome of a successful sign-in or sign-up: the
// signed-in identity plus the freshly issued ID token the caller presents
// on subsequent requests.
type AuthResult struct {
	Identity *entity.Identity
	IDToken  string
}

// IdentityProvider adapts the backend's authentication service. It owns the
// current signed-in identity; everything else in the system only reads it.
//
// Change notifications are emitted exactly once per actual change: a token
// refresh that leaves the UID untouched does not re-emit.
type IdentityProvider interface {
	// CurrentIdentity returns the signed-in identity, or ok=false while
	// signed out or still loading.
	CurrentIdentity() (identity *entity.Identity, ok bool)

	// Loading reports whether the initial identity state is still unknown.
	Loading() bool

	// OnIdentityChange registers a listener and returns its idempotent
	// cancel func.
	OnIdentityChange(fn IdentityChangeFunc) (cancel func())

	// SignIn authenticates with email/password. Backend rejections carry
	// the backend-supplied message.
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)

	// SignUp creates an account and signs it in.
	SignUp(ctx context.Context, email, password string) (*AuthResult, error)

	// SignOut clears the current identity.
	SignOut(ctx context.Context) error
}
