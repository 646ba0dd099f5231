package usecase

import "context"

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// UpdateProfilePhoto stores the photo under the user's stable profile key
	// and returns the resolved public URL. Re-uploading replaces the previous
	// photo in place.
	UpdateProfilePhoto(ctx context.Context, userID string, input *UpdateProfilePhotoInput) (string, error)
}

// --- Input DTOs ---

// UpdateProfilePhotoInput defines the data required to replace a profile photo.
type UpdateProfilePhotoInput struct {
	Photo            []byte `json:"photo" validate:"required"`
	PhotoContentType string `json:"photo_content_type"`
}
