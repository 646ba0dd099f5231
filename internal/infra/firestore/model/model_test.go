package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genproto/googleapis/type/latlng"

	"placemark/internal/domain/entity"
)

func TestAddressDocValid(t *testing.T) {
	doc := &AddressDoc{
		UserID:   "u1",
		Name:     "Home",
		Location: &latlng.LatLng{Latitude: 25.03, Longitude: 121.56},
	}
	assert.True(t, doc.Valid())

	assert.False(t, (&AddressDoc{Name: "Home", Location: doc.Location}).Valid())
	assert.False(t, (&AddressDoc{UserID: "u1", Location: doc.Location}).Valid())
	assert.False(t, (&AddressDoc{UserID: "u1", Name: "Home"}).Valid())
}

func TestCommentDocValid(t *testing.T) {
	assert.True(t, (&CommentDoc{UserID: "u1", Text: "hi"}).Valid())
	assert.True(t, (&CommentDoc{UserID: "u1", Text: "hi", PhotoURL: "https://cdn/p.jpg"}).Valid())
	// A photo never substitutes for text.
	assert.False(t, (&CommentDoc{UserID: "u1", PhotoURL: "https://cdn/p.jpg"}).Valid())
	assert.False(t, (&CommentDoc{UserID: "u1"}).Valid())
	assert.False(t, (&CommentDoc{Text: "hi"}).Valid())
}

func TestAddressRoundTrip(t *testing.T) {
	address := &entity.Address{
		UserID:      "u1",
		Name:        "Office",
		Description: "desk by the window",
		IsPublic:    true,
		PhotoURL:    "https://cdn/a.jpg",
		Latitude:    25.03,
		Longitude:   121.56,
	}

	got := FromAddressEntity(address).ToEntity("addr-1")

	assert.Equal(t, "addr-1", got.ID)
	assert.Equal(t, address.UserID, got.UserID)
	assert.Equal(t, address.Name, got.Name)
	assert.Equal(t, address.Description, got.Description)
	assert.Equal(t, address.IsPublic, got.IsPublic)
	assert.Equal(t, address.PhotoURL, got.PhotoURL)
	assert.InDelta(t, address.Latitude, got.Latitude, 1e-9)
	assert.InDelta(t, address.Longitude, got.Longitude, 1e-9)
	// Timestamps are server-resolved, never carried from the caller.
	assert.True(t, got.CreatedAt.IsZero())
}
