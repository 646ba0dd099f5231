package service

import (
	"context"

	"placemark/internal/domain/entity"
)

// TokenVerifier validates backend-issued ID tokens presented by API callers
// and resolves them to an identity.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*entity.Identity, error)
}
