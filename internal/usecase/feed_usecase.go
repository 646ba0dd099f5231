package usecase

import (
	"context"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/repository"
)

// FeedUsecase merges the public address stream with the caller's own
// addresses into a single de-duplicated feed.
type FeedUsecase interface {
	// WatchCombinedAddresses subscribes to both source streams and invokes fn
	// with the full merged snapshot whenever either source changes. The merged
	// set contains every public address plus every address owned by ownerID;
	// when an address appears in both sources the owner's copy is kept. The
	// returned cancel stops both subscriptions and is safe to call repeatedly.
	WatchCombinedAddresses(ctx context.Context, ownerID string, fn func([]*entity.Address)) (repository.CancelFunc, error)
}
