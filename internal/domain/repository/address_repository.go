package repository

import (
	"context"

	"placemark/internal/domain/entity"
	"placemark/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressSnapshotFunc receives a full replacement snapshot of addresses.
type AddressSnapshotFunc func(addresses []*entity.Address)

// AddressRepository defines document-store operations for addresses.
//
// Every method fails fast with the backend-not-configured error when the
// backend is unavailable; in particular Watch* fail synchronously instead
// of registering a no-op listener.
type AddressRepository interface {
	// CreateAddress persists a new address and returns the backend-assigned ID.
	// The CreatedAt timestamp is resolved by the backend, not the caller.
	CreateAddress(ctx context.Context, address *entity.Address) (string, error)

	// GetAddress retrieves the authoritative record by ID.
	// Returns ErrAddressNotFound if absent.
	GetAddress(ctx context.Context, id string) (*entity.Address, error)

	// DeleteAddress removes the record by ID.
	DeleteAddress(ctx context.Context, id string) error

	// WatchPublicAddresses streams snapshots of all public addresses.
	WatchPublicAddresses(ctx context.Context, fn AddressSnapshotFunc) (CancelFunc, error)

	// WatchOwnerAddresses streams snapshots of all addresses owned by userID,
	// private ones included.
	WatchOwnerAddresses(ctx context.Context, userID string, fn AddressSnapshotFunc) (CancelFunc, error)

	// WatchAddress streams the state of a single address. The callback
	// receives nil when the record does not exist or has been deleted.
	WatchAddress(ctx context.Context, id string, fn func(address *entity.Address)) (CancelFunc, error)
}
