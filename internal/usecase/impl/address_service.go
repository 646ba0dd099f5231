package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"placemark/internal/domain/entity"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/repository"
	"placemark/internal/domain/service"
	"placemark/internal/usecase"
	"placemark/internal/util"
)

// addressService implements the AddressUsecase interface. It is the only
// write path for addresses: photo upload, record write, event publishing
// and cleanup ordering all live here.
type addressService struct {
	addressRepo repository.AddressRepository
	photos      service.PhotoStorage
	events      service.EventPublisher
	qrcodes     service.QRCodeService
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	addressRepo repository.AddressRepository,
	photos service.PhotoStorage,
	events service.EventPublisher,
	qrcodes service.QRCodeService,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		addressRepo: addressRepo,
		photos:      photos,
		events:      events,
		qrcodes:     qrcodes,
		logger:      logger,
	}
}

// CreateAddress validates the input, uploads the photo when present, and
// only then writes the address record. A record never references a photo
// URL that has not finished uploading.
func (srv *addressService) CreateAddress(ctx context.Context, ownerID string, input *usecase.CreateAddressInput) (*entity.Address, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyAddressName)
	}

	srv.logger.Info("Creating address", "ownerID", ownerID, "name", name)

	// 1. Upload the photo first; abort the whole creation if it fails.
	photoURL := ""
	if len(input.Photo) > 0 {
		key := util.AddressPhotoKey(ownerID, time.Now())

		url, err := srv.photos.Upload(ctx, key, input.Photo, input.PhotoContentType)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}
		photoURL = url
	}

	// 2. Write the record referencing the already-stored photo.
	address := &entity.Address{
		UserID:      ownerID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		IsPublic:    input.IsPublic,
		PhotoURL:    photoURL,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}

	id, err := srv.addressRepo.CreateAddress(ctx, address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}
	address.ID = id

	// 3. Publishing is best-effort; the address already exists.
	srv.publishEvent(ctx, service.AddressEventCreated, address)

	return address, nil
}

// GetAddress retrieves an address, enforcing visibility: private addresses
// are only readable by their owner.
func (srv *addressService) GetAddress(ctx context.Context, requesterID, addressID string) (*entity.Address, error) {
	address, err := srv.fetch(ctx, addressID)
	if err != nil {
		return nil, err
	}

	if !address.IsPublic && !address.OwnedBy(requesterID) {
		return nil, errors.WithStack(domainerrors.ErrAddressNotPublic)
	}

	return address, nil
}

// DeleteAddress removes an address after re-checking ownership against the
// authoritative record, then cleans up the stored photo best-effort.
func (srv *addressService) DeleteAddress(ctx context.Context, ownerID, addressID string) error {
	// Ownership is decided by the stored record, never by caller-supplied state.
	address, err := srv.fetch(ctx, addressID)
	if err != nil {
		return err
	}

	if !address.OwnedBy(ownerID) {
		return errors.WithStack(domainerrors.ErrAddressOwnershipViolation)
	}

	if err := srv.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	srv.logger.Info("Deleted address", "ownerID", ownerID, "addressID", addressID)

	// Photo cleanup must never fail the already-completed deletion.
	srv.cleanupPhoto(ctx, address.PhotoURL)

	srv.publishEvent(ctx, service.AddressEventDeleted, address)

	return nil
}

// WatchAddress streams the state of a single address. The callback receives
// nil once the address is deleted.
func (srv *addressService) WatchAddress(ctx context.Context, addressID string, fn func(*entity.Address)) (repository.CancelFunc, error) {
	cancel, err := srv.addressRepo.WatchAddress(ctx, addressID, fn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch address")
	}

	return cancel, nil
}

// ShareQR renders the share code for an address the requester may see.
func (srv *addressService) ShareQR(ctx context.Context, requesterID, addressID string) ([]byte, error) {
	address, err := srv.GetAddress(ctx, requesterID, addressID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodes.GenerateAddressShareQR(address.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return png, nil
}

func (srv *addressService) fetch(ctx context.Context, addressID string) (*entity.Address, error) {
	address, err := srv.addressRepo.GetAddress(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, addressID)
		}

		return nil, errors.Wrap(err, "failed to get address")
	}

	return address, nil
}

func (srv *addressService) cleanupPhoto(ctx context.Context, photoURL string) {
	if photoURL == "" {
		return
	}

	key, ok := srv.photos.KeyFromURL(photoURL)
	if !ok {
		return
	}

	if err := srv.photos.Delete(ctx, key); err != nil {
		srv.logger.Warn("Failed to clean up photo, leaving orphan", "key", key, "error", err)
	}
}

func (srv *addressService) publishEvent(ctx context.Context, eventType string, address *entity.Address) {
	event := &service.AddressEvent{
		Type:       eventType,
		AddressID:  address.ID,
		UserID:     address.UserID,
		IsPublic:   address.IsPublic,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.events.PublishAddressEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish address event", "type", eventType, "addressID", address.ID, "error", err)
	}
}
