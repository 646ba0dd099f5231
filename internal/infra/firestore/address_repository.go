package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"placemark/internal/domain/entity"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/repository"
	"placemark/internal/infra/firestore/model"
)

// addressRepository implements repository.AddressRepository over Firestore.
type addressRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(client *firestore.Client, logger *slog.Logger) repository.AddressRepository {
	return &addressRepository{
		client: client,
		logger: logger,
	}
}

// ensureConfigured is the configuration gate, checked before any other work.
func (repo *addressRepository) ensureConfigured() error {
	if repo.client == nil {
		return errors.WithStack(domainerrors.ErrBackendNotConfigured)
	}

	return nil
}

// CreateAddress persists a new address and returns the backend-assigned ID.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) (string, error) {
	if err := repo.ensureConfigured(); err != nil {
		return "", err
	}

	ref, _, err := repo.client.Collection(addressCollection).Add(ctx, model.FromAddressEntity(address))
	if err != nil {
		return "", errors.Wrap(err, "failed to create address document")
	}

	return ref.ID, nil
}

// GetAddress retrieves the authoritative address record.
func (repo *addressRepository) GetAddress(ctx context.Context, id string) (*entity.Address, error) {
	if err := repo.ensureConfigured(); err != nil {
		return nil, err
	}

	snap, err := repo.client.Collection(addressCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errors.WithStack(repository.ErrAddressNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get address document")
	}

	address, ok := repo.decodeAddress(snap)
	if !ok {
		// Malformed document: fail closed, treat as absent.
		return nil, errors.WithStack(repository.ErrAddressNotFound)
	}

	return address, nil
}

// DeleteAddress removes the address record.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id string) error {
	if err := repo.ensureConfigured(); err != nil {
		return err
	}

	if _, err := repo.client.Collection(addressCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete address document")
	}

	return nil
}

// WatchPublicAddresses streams snapshots of all public addresses.
func (repo *addressRepository) WatchPublicAddresses(ctx context.Context, fn repository.AddressSnapshotFunc) (repository.CancelFunc, error) {
	if err := repo.ensureConfigured(); err != nil {
		return nil, err
	}

	query := repo.client.Collection(addressCollection).Where("isPublic", "==", true)

	return repo.watchQuery(ctx, query, fn)
}

// WatchOwnerAddresses streams snapshots of all addresses owned by userID.
func (repo *addressRepository) WatchOwnerAddresses(ctx context.Context, userID string, fn repository.AddressSnapshotFunc) (repository.CancelFunc, error) {
	if err := repo.ensureConfigured(); err != nil {
		return nil, err
	}

	query := repo.client.Collection(addressCollection).Where("userId", "==", userID)

	return repo.watchQuery(ctx, query, fn)
}

// WatchAddress streams the state of a single address document.
func (repo *addressRepository) WatchAddress(ctx context.Context, id string, fn func(address *entity.Address)) (repository.CancelFunc, error) {
	if err := repo.ensureConfigured(); err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	snapshots := repo.client.Collection(addressCollection).Doc(id).Snapshots(watchCtx)

	go func() {
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Error("address snapshot listener stopped",
						slog.String("address_id", id),
						slog.Any("error", err),
					)
				}

				return
			}

			if !snap.Exists() {
				fn(nil)

				continue
			}

			if address, ok := repo.decodeAddress(snap); ok {
				fn(address)
			} else {
				fn(nil)
			}
		}
	}()

	return repository.CancelFunc(cancel), nil
}

// watchQuery pumps query snapshots to fn until cancelled. Each invocation
// carries the complete current matching set.
func (repo *addressRepository) watchQuery(ctx context.Context, query firestore.Query, fn repository.AddressSnapshotFunc) (repository.CancelFunc, error) {
	watchCtx, cancel := context.WithCancel(ctx)
	snapshots := query.Snapshots(watchCtx)

	go func() {
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Error("address query listener stopped", slog.Any("error", err))
				}

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				repo.logger.Error("failed to read address snapshot documents", slog.Any("error", err))

				continue
			}

			addresses := make([]*entity.Address, 0, len(docs))
			for _, doc := range docs {
				if address, ok := repo.decodeAddress(doc); ok {
					addresses = append(addresses, address)
				}
			}

			fn(addresses)
		}
	}()

	return repository.CancelFunc(cancel), nil
}

// decodeAddress validates the document at the subscription boundary.
// Malformed documents are dropped and logged, never propagated upward.
func (repo *addressRepository) decodeAddress(doc *firestore.DocumentSnapshot) (*entity.Address, bool) {
	var data model.AddressDoc
	if err := doc.DataTo(&data); err != nil {
		repo.logger.Warn("dropping malformed address document",
			slog.String("doc_id", doc.Ref.ID),
			slog.Any("error", err),
		)

		return nil, false
	}

	if !data.Valid() {
		repo.logger.Warn("dropping address document with missing required fields",
			slog.String("doc_id", doc.Ref.ID),
		)

		return nil, false
	}

	return data.ToEntity(doc.Ref.ID), true
}
