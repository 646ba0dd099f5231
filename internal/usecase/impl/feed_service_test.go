package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/repository"
	mockRepo "placemark/internal/mocks/repository"
	"placemark/internal/usecase"
)

func createTestFeedService(t *testing.T) (usecase.FeedUsecase, *mockRepo.MockAddressRepository) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewFeedService(addressRepo, logger), addressRepo
}

func addr(id, owner string, public bool) *entity.Address {
	return &entity.Address{ID: id, UserID: owner, IsPublic: public}
}

func ids(addresses []*entity.Address) []string {
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, a.ID)
	}

	return out
}

func TestMergeAddresses_OwnersCopyWinsOnCollision(t *testing.T) {
	stale := addr("a1", "u1", true)
	stale.Name = "stale"
	fresh := addr("a1", "u1", true)
	fresh.Name = "fresh"

	merged := mergeAddresses(
		[]*entity.Address{stale, addr("a2", "other", true)},
		[]*entity.Address{fresh, addr("a3", "u1", false)},
	)

	require.Equal(t, []string{"a1", "a2", "a3"}, ids(merged))
	assert.Equal(t, "fresh", merged[0].Name)
}

func TestMergeAddresses_NoDuplicateIDs(t *testing.T) {
	merged := mergeAddresses(
		[]*entity.Address{addr("a1", "u1", true), addr("a2", "other", true)},
		[]*entity.Address{addr("a1", "u1", true), addr("a2", "u1", true)},
	)

	seen := map[string]int{}
	for _, a := range merged {
		seen[a.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %s appears %d times", id, n)
	}
}

func TestMergeAddresses_DeterministicForSameInputs(t *testing.T) {
	public := []*entity.Address{addr("a2", "other", true), addr("a1", "u1", true)}
	mine := []*entity.Address{addr("a3", "u1", false), addr("a1", "u1", true)}

	first := mergeAddresses(public, mine)
	second := mergeAddresses(public, mine)

	assert.Equal(t, ids(first), ids(second))
}

func TestMergeAddresses_EmptySources(t *testing.T) {
	assert.Empty(t, mergeAddresses(nil, nil))
	assert.Equal(t, []string{"a1"}, ids(mergeAddresses([]*entity.Address{addr("a1", "x", true)}, nil)))
	assert.Equal(t, []string{"a1"}, ids(mergeAddresses(nil, []*entity.Address{addr("a1", "u1", false)})))
}

func TestFeedService_WatchCombinedAddresses_EmitsOnEitherSource(t *testing.T) {
	service, addressRepo := createTestFeedService(t)

	ctx := context.Background()
	var publicFn, mineFn repository.AddressSnapshotFunc

	addressRepo.EXPECT().
		WatchPublicAddresses(ctx, mock.Anything).
		Run(func(ctx context.Context, fn repository.AddressSnapshotFunc) {
			publicFn = fn
		}).
		Return(repository.CancelFunc(func() {}), nil)

	addressRepo.EXPECT().
		WatchOwnerAddresses(ctx, "u1", mock.Anything).
		Run(func(ctx context.Context, userID string, fn repository.AddressSnapshotFunc) {
			mineFn = fn
		}).
		Return(repository.CancelFunc(func() {}), nil)

	var snapshots [][]string
	cancel, err := service.WatchCombinedAddresses(ctx, "u1", func(addresses []*entity.Address) {
		snapshots = append(snapshots, ids(addresses))
	})
	require.NoError(t, err)
	defer cancel()

	publicFn([]*entity.Address{addr("a1", "other", true)})
	mineFn([]*entity.Address{addr("a2", "u1", false)})
	publicFn([]*entity.Address{addr("a1", "other", true), addr("a3", "other", true)})

	// Each source change produces a full replacement of the merged feed.
	require.Equal(t, [][]string{
		{"a1"},
		{"a1", "a2"},
		{"a1", "a3", "a2"},
	}, snapshots)
}

func TestFeedService_WatchCombinedAddresses_CancelStopsBothOnce(t *testing.T) {
	service, addressRepo := createTestFeedService(t)

	ctx := context.Background()
	publicCancels := 0
	mineCancels := 0

	addressRepo.EXPECT().
		WatchPublicAddresses(ctx, mock.Anything).
		Return(repository.CancelFunc(func() { publicCancels++ }), nil)
	addressRepo.EXPECT().
		WatchOwnerAddresses(ctx, "u1", mock.Anything).
		Return(repository.CancelFunc(func() { mineCancels++ }), nil)

	cancel, err := service.WatchCombinedAddresses(ctx, "u1", func([]*entity.Address) {})
	require.NoError(t, err)

	cancel()
	cancel() // second call must be a no-op

	assert.Equal(t, 1, publicCancels)
	assert.Equal(t, 1, mineCancels)
}

func TestFeedService_WatchCombinedAddresses_SecondWatchFailureCancelsFirst(t *testing.T) {
	service, addressRepo := createTestFeedService(t)

	ctx := context.Background()
	publicCancels := 0

	addressRepo.EXPECT().
		WatchPublicAddresses(ctx, mock.Anything).
		Return(repository.CancelFunc(func() { publicCancels++ }), nil)
	addressRepo.EXPECT().
		WatchOwnerAddresses(ctx, "u1", mock.Anything).
		Return(nil, errors.New("listener failed"))

	_, err := service.WatchCombinedAddresses(ctx, "u1", func([]*entity.Address) {})

	require.Error(t, err)
	assert.Equal(t, 1, publicCancels)
}
