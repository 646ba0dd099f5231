package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/service"
	"placemark/internal/usecase"
	"placemark/internal/util"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	photos service.PhotoStorage
	logger *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	photos service.PhotoStorage,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		photos: photos,
		logger: logger,
	}
}

// UpdateProfilePhoto writes the photo to the user's stable key, so repeated
// uploads replace the object in place and the public URL never changes.
func (srv *profileService) UpdateProfilePhoto(ctx context.Context, userID string, input *usecase.UpdateProfilePhotoInput) (string, error) {
	if len(input.Photo) == 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "photo is required")
	}

	key := util.ProfilePhotoKey(userID)

	url, err := srv.photos.Upload(ctx, key, input.Photo, input.PhotoContentType)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	srv.logger.Info("Updated profile photo", "userID", userID)

	return url, nil
}
