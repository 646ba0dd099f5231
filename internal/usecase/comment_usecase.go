package usecase

import (
	"context"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/repository"
)

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	AddComment(ctx context.Context, author *entity.Identity, addressID string, input *AddCommentInput) (*entity.Comment, error)
	DeleteComment(ctx context.Context, requesterID, addressID, commentID string) error
	WatchComments(ctx context.Context, addressID string, fn repository.CommentSnapshotFunc) (repository.CancelFunc, error)
}

// --- Input DTOs ---

// AddCommentInput defines the data required to add a comment to an address.
type AddCommentInput struct {
	Text             string `json:"text"`
	Photo            []byte `json:"photo,omitempty"`
	PhotoContentType string `json:"photo_content_type,omitempty"`
}
