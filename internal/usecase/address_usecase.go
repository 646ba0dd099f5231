package usecase

import (
	"context"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/repository"
)

// AddressUsecase defines the interface for address-related business operations.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, ownerID string, input *CreateAddressInput) (*entity.Address, error)
	GetAddress(ctx context.Context, requesterID, addressID string) (*entity.Address, error)
	DeleteAddress(ctx context.Context, ownerID, addressID string) error
	WatchAddress(ctx context.Context, addressID string, fn func(*entity.Address)) (repository.CancelFunc, error)
	ShareQR(ctx context.Context, requesterID, addressID string) ([]byte, error)
}

// --- Input DTOs ---

// CreateAddressInput defines the data required to create an address.
// The photo, when present, is uploaded before the address record is written.
type CreateAddressInput struct {
	Name             string  `json:"name" validate:"required"`
	Description      string  `json:"description"`
	IsPublic         bool    `json:"is_public"`
	Latitude         float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude        float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Photo            []byte  `json:"photo,omitempty"`
	PhotoContentType string  `json:"photo_content_type,omitempty"`
}
