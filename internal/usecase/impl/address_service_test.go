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
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/repository"
	mockRepo "placemark/internal/mocks/repository"
	mockSvc "placemark/internal/mocks/service"
	"placemark/internal/usecase"
)

func createTestAddressService(t *testing.T) (
	usecase.AddressUsecase,
	*mockRepo.MockAddressRepository,
	*mockSvc.MockPhotoStorage,
	*mockSvc.MockEventPublisher,
	*mockSvc.MockQRCodeService,
) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	photos := mockSvc.NewMockPhotoStorage(t)
	events := mockSvc.NewMockEventPublisher(t)
	qrcodes := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewAddressService(addressRepo, photos, events, qrcodes, logger)

	return service, addressRepo, photos, events, qrcodes
}

func TestAddressService_CreateAddress_UploadsPhotoBeforeWrite(t *testing.T) {
	service, addressRepo, photos, events, _ := createTestAddressService(t)

	ctx := context.Background()
	var calls []string

	photos.EXPECT().
		Upload(ctx, mock.Anything, []byte("jpeg"), "image/jpeg").
		Run(func(ctx context.Context, key string, data []byte, contentType string) {
			calls = append(calls, "upload")
		}).
		Return("https://photos.example.com/addresses/u1/1-x.jpg", nil)

	addressRepo.EXPECT().
		CreateAddress(ctx, mock.Anything).
		Run(func(ctx context.Context, address *entity.Address) {
			calls = append(calls, "write")
			assert.Equal(t, "https://photos.example.com/addresses/u1/1-x.jpg", address.PhotoURL)
		}).
		Return("addr-1", nil)

	events.EXPECT().PublishAddressEvent(ctx, mock.Anything).Return(nil)

	address, err := service.CreateAddress(ctx, "u1", &usecase.CreateAddressInput{
		Name:             "Home",
		Latitude:         25.03,
		Longitude:        121.56,
		Photo:            []byte("jpeg"),
		PhotoContentType: "image/jpeg",
	})

	require.NoError(t, err)
	assert.Equal(t, "addr-1", address.ID)
	assert.Equal(t, []string{"upload", "write"}, calls)
}

func TestAddressService_CreateAddress_UploadFailureAbortsWrite(t *testing.T) {
	service, _, photos, _, _ := createTestAddressService(t)

	ctx := context.Background()
	photos.EXPECT().
		Upload(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable"))

	// No CreateAddress expectation: the record must never be written.
	_, err := service.CreateAddress(ctx, "u1", &usecase.CreateAddressInput{
		Name:  "Home",
		Photo: []byte("jpeg"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}

func TestAddressService_CreateAddress_TrimsFields(t *testing.T) {
	service, addressRepo, _, events, _ := createTestAddressService(t)

	ctx := context.Background()
	addressRepo.EXPECT().
		CreateAddress(ctx, mock.Anything).
		Run(func(ctx context.Context, address *entity.Address) {
			assert.Equal(t, "Home", address.Name)
			assert.Equal(t, "near the park", address.Description)
		}).
		Return("addr-1", nil)
	events.EXPECT().PublishAddressEvent(ctx, mock.Anything).Return(nil)

	_, err := service.CreateAddress(ctx, "u1", &usecase.CreateAddressInput{
		Name:        "  Home  ",
		Description: "\tnear the park\n",
	})

	require.NoError(t, err)
}

func TestAddressService_CreateAddress_EmptyNameRejectedBeforeAnyCall(t *testing.T) {
	service, _, _, _, _ := createTestAddressService(t)

	// Whitespace-only collapses to empty after trimming.
	_, err := service.CreateAddress(context.Background(), "u1", &usecase.CreateAddressInput{
		Name: "   ",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyAddressName))
}

func TestAddressService_CreateAddress_PublishFailureDoesNotFail(t *testing.T) {
	service, addressRepo, _, events, _ := createTestAddressService(t)

	ctx := context.Background()
	addressRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return("addr-1", nil)
	events.EXPECT().PublishAddressEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	address, err := service.CreateAddress(ctx, "u1", &usecase.CreateAddressInput{Name: "Home"})

	require.NoError(t, err)
	assert.Equal(t, "addr-1", address.ID)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	service, addressRepo, photos, events, _ := createTestAddressService(t)

	ctx := context.Background()
	stored := &entity.Address{
		ID:       "addr-1",
		UserID:   "u1",
		Name:     "Home",
		PhotoURL: "https://photos.example.com/addresses/u1/1-x.jpg",
	}

	addressRepo.EXPECT().GetAddress(ctx, "addr-1").Return(stored, nil)
	addressRepo.EXPECT().DeleteAddress(ctx, "addr-1").Return(nil)
	photos.EXPECT().KeyFromURL(stored.PhotoURL).Return("addresses/u1/1-x.jpg", true)
	photos.EXPECT().Delete(ctx, "addresses/u1/1-x.jpg").Return(nil)
	events.EXPECT().PublishAddressEvent(ctx, mock.Anything).Return(nil)

	require.NoError(t, service.DeleteAddress(ctx, "u1", "addr-1"))
}

func TestAddressService_DeleteAddress_OwnershipCheckedAgainstStoredRecord(t *testing.T) {
	service, addressRepo, _, _, _ := createTestAddressService(t)

	ctx := context.Background()
	addressRepo.EXPECT().
		GetAddress(ctx, "addr-1").
		Return(&entity.Address{ID: "addr-1", UserID: "u1"}, nil)

	err := service.DeleteAddress(ctx, "intruder", "addr-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressOwnershipViolation))
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	service, addressRepo, _, _, _ := createTestAddressService(t)

	ctx := context.Background()
	addressRepo.EXPECT().GetAddress(ctx, "gone").Return(nil, repository.ErrAddressNotFound)

	err := service.DeleteAddress(ctx, "u1", "gone")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_DeleteAddress_PhotoCleanupFailureIsSwallowed(t *testing.T) {
	service, addressRepo, photos, events, _ := createTestAddressService(t)

	ctx := context.Background()
	stored := &entity.Address{
		ID:       "addr-1",
		UserID:   "u1",
		PhotoURL: "https://photos.example.com/addresses/u1/1-x.jpg",
	}

	addressRepo.EXPECT().GetAddress(ctx, "addr-1").Return(stored, nil)
	addressRepo.EXPECT().DeleteAddress(ctx, "addr-1").Return(nil)
	photos.EXPECT().KeyFromURL(stored.PhotoURL).Return("addresses/u1/1-x.jpg", true)
	photos.EXPECT().Delete(ctx, "addresses/u1/1-x.jpg").Return(errors.New("object locked"))
	events.EXPECT().PublishAddressEvent(ctx, mock.Anything).Return(nil)

	// The record deletion already succeeded; cleanup trouble stays internal.
	require.NoError(t, service.DeleteAddress(ctx, "u1", "addr-1"))
}

func TestAddressService_GetAddress_PrivateHiddenFromOthers(t *testing.T) {
	service, addressRepo, _, _, _ := createTestAddressService(t)

	ctx := context.Background()
	addressRepo.EXPECT().
		GetAddress(ctx, "addr-1").
		Return(&entity.Address{ID: "addr-1", UserID: "u1", IsPublic: false}, nil)

	_, err := service.GetAddress(ctx, "someone-else", "addr-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotPublic))
}

func TestAddressService_GetAddress_OwnerSeesPrivate(t *testing.T) {
	service, addressRepo, _, _, _ := createTestAddressService(t)

	ctx := context.Background()
	addressRepo.EXPECT().
		GetAddress(ctx, "addr-1").
		Return(&entity.Address{ID: "addr-1", UserID: "u1", IsPublic: false}, nil)

	address, err := service.GetAddress(ctx, "u1", "addr-1")

	require.NoError(t, err)
	assert.Equal(t, "addr-1", address.ID)
}

func TestAddressService_ShareQR(t *testing.T) {
	service, addressRepo, _, _, qrcodes := createTestAddressService(t)

	ctx := context.Background()
	addressRepo.EXPECT().
		GetAddress(ctx, "addr-1").
		Return(&entity.Address{ID: "addr-1", UserID: "u1", IsPublic: true}, nil)
	qrcodes.EXPECT().GenerateAddressShareQR("addr-1").Return([]byte("png"), nil)

	png, err := service.ShareQR(ctx, "anyone", "addr-1")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
