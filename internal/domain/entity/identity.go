package entity

// Identity is the signed-in principal as reported by the identity provider.
// It is read-only to the rest of the system.
type Identity struct {
	UID      string // Opaque stable user identifier.
	Email    string // Optional.
	PhotoURL string // Optional profile photo URL.
}

// SameUser reports whether both identities refer to the same principal.
// Identity change notifications are de-duplicated with this, so a token
// refresh that changes no identity fields does not re-emit.
func (i *Identity) SameUser(other *Identity) bool {
	if i == nil || other == nil {
		return i == nil && other == nil
	}

	return i.UID == other.UID
}
