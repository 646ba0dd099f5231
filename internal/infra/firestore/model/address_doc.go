// Package model holds the Firestore document shapes and their mapping to
// domain entities. Decoding validates at this boundary and fails closed:
// a document that does not match its schema is treated as absent.
package model

import (
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"

	"placemark/internal/domain/entity"
)

// AddressDoc is the document shape of the "addresses" collection.
type AddressDoc struct {
	UserID      string         `firestore:"userId"`
	Name        string         `firestore:"name"`
	Description string         `firestore:"description"`
	IsPublic    bool           `firestore:"isPublic"`
	PhotoURL    string         `firestore:"photoUrl"`
	Location    *latlng.LatLng `firestore:"location"`
	CreatedAt   time.Time      `firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time      `firestore:"updatedAt,serverTimestamp"`
}

// Valid reports whether the decoded document carries the required fields.
func (d *AddressDoc) Valid() bool {
	return d.UserID != "" && d.Name != "" && d.Location != nil
}

// ToEntity maps the document to the domain entity.
func (d *AddressDoc) ToEntity(id string) *entity.Address {
	return &entity.Address{
		ID:          id,
		UserID:      d.UserID,
		Name:        d.Name,
		Description: d.Description,
		IsPublic:    d.IsPublic,
		PhotoURL:    d.PhotoURL,
		Latitude:    d.Location.GetLatitude(),
		Longitude:   d.Location.GetLongitude(),
		CreatedAt:   d.CreatedAt,
	}
}

// FromAddressEntity maps a domain entity to its document shape.
// CreatedAt/UpdatedAt are left zero so the server resolves the timestamps.
func FromAddressEntity(address *entity.Address) *AddressDoc {
	return &AddressDoc{
		UserID:      address.UserID,
		Name:        address.Name,
		Description: address.Description,
		IsPublic:    address.IsPublic,
		PhotoURL:    address.PhotoURL,
		Location: &latlng.LatLng{
			Latitude:  address.Latitude,
			Longitude: address.Longitude,
		},
	}
}
