package firestore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placemark/internal/domain/entity"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/errors"
)

// With no Firestore client every operation must fail synchronously before
// touching the network, and Watch calls must not register a listener.

func TestAddressRepositoryUnconfiguredFailsFast(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewAddressRepository(nil, logger)
	ctx := context.Background()

	_, err := repo.CreateAddress(ctx, &entity.Address{Name: "Home"})
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))

	_, err = repo.GetAddress(ctx, "a1")
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))

	err = repo.DeleteAddress(ctx, "a1")
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))

	cancel, err := repo.WatchPublicAddresses(ctx, func([]*entity.Address) {
		t.Fatal("callback must not fire when unconfigured")
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))
	assert.Nil(t, cancel)

	cancel, err = repo.WatchOwnerAddresses(ctx, "u1", func([]*entity.Address) {
		t.Fatal("callback must not fire when unconfigured")
	})
	require.Error(t, err)
	assert.Nil(t, cancel)

	cancel, err = repo.WatchAddress(ctx, "a1", func(*entity.Address) {
		t.Fatal("callback must not fire when unconfigured")
	})
	require.Error(t, err)
	assert.Nil(t, cancel)
}

func TestCommentRepositoryUnconfiguredFailsFast(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewCommentRepository(nil, logger)
	ctx := context.Background()

	_, err := repo.AddComment(ctx, &entity.Comment{AddressID: "a1", Text: "hi"})
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))

	_, err = repo.GetComment(ctx, "a1", "c1")
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))

	err = repo.DeleteComment(ctx, "a1", "c1")
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))

	cancel, err := repo.WatchComments(ctx, "a1", func([]*entity.Comment) {
		t.Fatal("callback must not fire when unconfigured")
	})
	require.Error(t, err)
	assert.Nil(t, cancel)
}
