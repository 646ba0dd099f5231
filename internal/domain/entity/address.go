// Package entity contains the core business objects of the project.
package entity

import "time"

// Address is a geolocated point of interest recorded by a user.
// It is write-once: after creation only the backend touches it (timestamp
// resolution), and only the owning user may delete it.
type Address struct {
	ID          string    // Backend-assigned document ID, unique across all addresses.
	UserID      string    // Identity of the creator, used for ownership checks.
	Name        string    // Display name, trimmed at write time.
	Description string    // Optional free text.
	IsPublic    bool      // Controls visibility in the shared stream.
	PhotoURL    string    // Resolved URL of the stored photo, empty if none.
	Latitude    float64   // Decimal degrees.
	Longitude   float64   // Decimal degrees. No uniqueness constraint on coordinates.
	CreatedAt   time.Time // Server-assigned, zero until the backend resolves it.
}

// OwnedBy reports whether the address belongs to the given user.
func (a *Address) OwnedBy(userID string) bool {
	return a.UserID == userID
}
