package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/repository"
	"placemark/internal/usecase"
)

// feedService implements the FeedUsecase interface. Each subscription holds
// the latest snapshot from both sources and recomputes the merged feed
// whenever either one is replaced.
type feedService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.FeedUsecase {
	return &feedService{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// combinedWatch is the per-subscription state. The mutex covers both cached
// snapshots and extends over the fn callback, so merged snapshots are
// delivered serially and in recomputation order.
type combinedWatch struct {
	mu     sync.Mutex
	public []*entity.Address
	mine   []*entity.Address
	fn     func([]*entity.Address)
}

func (w *combinedWatch) setPublic(addresses []*entity.Address) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.public = addresses
	w.fn(mergeAddresses(w.public, w.mine))
}

func (w *combinedWatch) setMine(addresses []*entity.Address) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.mine = addresses
	w.fn(mergeAddresses(w.public, w.mine))
}

// WatchCombinedAddresses subscribes to the public stream and the owner's
// stream and emits the merged snapshot on every change from either side.
func (srv *feedService) WatchCombinedAddresses(ctx context.Context, ownerID string, fn func([]*entity.Address)) (repository.CancelFunc, error) {
	watch := &combinedWatch{fn: fn}

	cancelPublic, err := srv.addressRepo.WatchPublicAddresses(ctx, watch.setPublic)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch public addresses")
	}

	cancelMine, err := srv.addressRepo.WatchOwnerAddresses(ctx, ownerID, watch.setMine)
	if err != nil {
		cancelPublic()

		return nil, errors.Wrap(err, "failed to watch owner addresses")
	}

	srv.logger.Debug("Combined feed subscription opened", "ownerID", ownerID)

	var once sync.Once

	return func() {
		once.Do(func() {
			cancelPublic()
			cancelMine()
		})
	}, nil
}

// mergeAddresses combines the two source snapshots into one de-duplicated
// feed. It is a pure function of its inputs: public addresses keep their
// stream order, with the owner's copy substituted in place when the same ID
// appears in both sources, and the owner's remaining (private) addresses
// appended after. The inputs are never mutated.
func mergeAddresses(public, mine []*entity.Address) []*entity.Address {
	mineByID := make(map[string]*entity.Address, len(mine))
	for _, address := range mine {
		mineByID[address.ID] = address
	}

	merged := make([]*entity.Address, 0, len(public)+len(mine))
	inPublic := make(map[string]bool, len(public))

	for _, address := range public {
		if own, ok := mineByID[address.ID]; ok {
			merged = append(merged, own)
		} else {
			merged = append(merged, address)
		}
		inPublic[address.ID] = true
	}

	for _, address := range mine {
		if !inPublic[address.ID] {
			merged = append(merged, address)
		}
	}

	return merged
}
