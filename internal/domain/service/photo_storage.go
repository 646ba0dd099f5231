// Package service defines domain-level interfaces for external collaborators
// that are not document repositories (blob storage, identity, eventing).
package service

import "context"

// PhotoStorage is the blob store holding address, comment and profile photos.
//
// Upload resolves to a public URL only after the object is fully written;
// callers rely on this to order the upload strictly before the record write
// that references it.
type PhotoStorage interface {
	// Upload writes the object at key and returns its resolved public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a resolved public URL back to its object key.
	// Returns false when the URL does not belong to this store.
	KeyFromURL(url string) (string, bool)
}
