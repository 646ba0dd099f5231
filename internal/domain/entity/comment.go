package entity

import "time"

// Comment is a remark attached to exactly one address. Comments are
// presented newest-first by CreatedAt.
type Comment struct {
	ID          string    // Unique within the parent address's comment set.
	AddressID   string    // Back-reference to the owning address.
	UserID      string    // Identity of the author, immutable.
	AuthorEmail string    // Denormalized display label captured at creation time.
	Text        string    // Non-empty after trimming.
	PhotoURL    string    // Resolved URL of the stored photo, empty if none.
	CreatedAt   time.Time // Server-assigned, zero until the backend resolves it.
}

// OwnedBy reports whether the comment was authored by the given user.
func (c *Comment) OwnedBy(userID string) bool {
	return c.UserID == userID
}
