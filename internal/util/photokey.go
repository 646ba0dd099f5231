// Package util holds small shared helpers.
package util

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Storage key conventions for photos. Address photos get a fresh unique key
// on every upload (time plus random suffix, so rapid repeated uploads by the
// same user never collide); comment photos are keyed by thread, author and
// time; the profile photo key is stable so a re-upload overwrites the
// previous object in place.

// AddressPhotoKey returns a unique key under the user's address photo prefix.
func AddressPhotoKey(userID string, now time.Time) string {
	suffix := uuid.NewString()[:8]

	return fmt.Sprintf("addresses/%s/%d-%s.jpg", userID, now.UnixMilli(), suffix)
}

// CommentPhotoKey returns a key scoped by address and author.
func CommentPhotoKey(addressID, userID string, now time.Time) string {
	return fmt.Sprintf("addressComments/%s/%s/%d.jpg", addressID, userID, now.UnixMilli())
}

// ProfilePhotoKey returns the stable, overwritable key of a user's profile photo.
func ProfilePhotoKey(userID string) string {
	return fmt.Sprintf("users/%s/profile.jpg", userID)
}
