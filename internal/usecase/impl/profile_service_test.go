package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "placemark/internal/domain/errors"
	mockSvc "placemark/internal/mocks/service"
	"placemark/internal/usecase"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockSvc.MockPhotoStorage) {
	photos := mockSvc.NewMockPhotoStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewProfileService(photos, logger), photos
}

func TestProfileService_UpdateProfilePhoto_UsesStableKey(t *testing.T) {
	service, photos := createTestProfileService(t)

	ctx := context.Background()
	photos.EXPECT().
		Upload(ctx, "users/u1/profile.jpg", []byte("jpeg"), "image/jpeg").
		Return("https://photos.example.com/users/u1/profile.jpg", nil)

	url, err := service.UpdateProfilePhoto(ctx, "u1", &usecase.UpdateProfilePhotoInput{
		Photo:            []byte("jpeg"),
		PhotoContentType: "image/jpeg",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://photos.example.com/users/u1/profile.jpg", url)
}

func TestProfileService_UpdateProfilePhoto_EmptyPhotoRejected(t *testing.T) {
	service, _ := createTestProfileService(t)

	_, err := service.UpdateProfilePhoto(context.Background(), "u1", &usecase.UpdateProfilePhotoInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_UpdateProfilePhoto_UploadFailure(t *testing.T) {
	service, photos := createTestProfileService(t)

	ctx := context.Background()
	photos.EXPECT().
		Upload(ctx, "users/u1/profile.jpg", []byte("jpeg"), "").
		Return("", errors.New("bucket unavailable"))

	_, err := service.UpdateProfilePhoto(ctx, "u1", &usecase.UpdateProfilePhotoInput{
		Photo: []byte("jpeg"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}
