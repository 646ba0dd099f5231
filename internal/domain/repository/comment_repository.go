package repository

import (
	"context"

	"placemark/internal/domain/entity"
	"placemark/internal/errors"
)

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentSnapshotFunc receives a full replacement snapshot of a comment
// thread, ordered newest-first by CreatedAt. Ties keep a stable order
// within a given snapshot.
type CommentSnapshotFunc func(comments []*entity.Comment)

// CommentRepository defines document-store operations for the comment
// thread nested under each address.
type CommentRepository interface {
	// AddComment persists a new comment under its address and returns the
	// backend-assigned ID.
	AddComment(ctx context.Context, comment *entity.Comment) (string, error)

	// GetComment retrieves the authoritative comment record.
	// Returns ErrCommentNotFound if absent.
	GetComment(ctx context.Context, addressID, commentID string) (*entity.Comment, error)

	// DeleteComment removes the comment record.
	DeleteComment(ctx context.Context, addressID, commentID string) error

	// WatchComments streams snapshots of the address's comment thread.
	WatchComments(ctx context.Context, addressID string, fn CommentSnapshotFunc) (CancelFunc, error)
}
