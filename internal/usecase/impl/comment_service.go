package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"placemark/internal/domain/entity"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/repository"
	"placemark/internal/domain/service"
	"placemark/internal/usecase"
	"placemark/internal/util"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	addressRepo repository.AddressRepository
	photos      service.PhotoStorage
	logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	addressRepo repository.AddressRepository,
	photos service.PhotoStorage,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		commentRepo: commentRepo,
		addressRepo: addressRepo,
		photos:      photos,
		logger:      logger,
	}
}

// AddComment appends a comment to an address's thread. Empty post-trim text
// is rejected before any backend call, photo or not; when a photo is attached
// it is uploaded before the comment record is written.
func (srv *commentService) AddComment(ctx context.Context, author *entity.Identity, addressID string, input *usecase.AddCommentInput) (*entity.Comment, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyComment)
	}

	// The parent must exist; a thread never outlives its address.
	if _, err := srv.addressRepo.GetAddress(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, addressID)
		}

		return nil, errors.Wrap(err, "failed to get address")
	}

	photoURL := ""
	if len(input.Photo) > 0 {
		key := util.CommentPhotoKey(addressID, author.UID, time.Now())

		url, err := srv.photos.Upload(ctx, key, input.Photo, input.PhotoContentType)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}
		photoURL = url
	}

	comment := &entity.Comment{
		AddressID:   addressID,
		UserID:      author.UID,
		AuthorEmail: author.Email,
		Text:        text,
		PhotoURL:    photoURL,
	}

	id, err := srv.commentRepo.AddComment(ctx, comment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add comment")
	}
	comment.ID = id

	srv.logger.Info("Added comment", "addressID", addressID, "commentID", id, "authorID", author.UID)

	return comment, nil
}

// DeleteComment removes a comment after re-checking authorship against the
// authoritative record, then cleans up its photo best-effort.
func (srv *commentService) DeleteComment(ctx context.Context, requesterID, addressID, commentID string) error {
	comment, err := srv.commentRepo.GetComment(ctx, addressID, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return errors.Wrap(domainerrors.ErrCommentNotFound, commentID)
		}

		return errors.Wrap(err, "failed to get comment")
	}

	if !comment.OwnedBy(requesterID) {
		return errors.WithStack(domainerrors.ErrCommentOwnershipViolation)
	}

	if err := srv.commentRepo.DeleteComment(ctx, addressID, commentID); err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}

	srv.logger.Info("Deleted comment", "addressID", addressID, "commentID", commentID)

	if comment.PhotoURL != "" {
		if key, ok := srv.photos.KeyFromURL(comment.PhotoURL); ok {
			if err := srv.photos.Delete(ctx, key); err != nil {
				srv.logger.Warn("Failed to clean up comment photo, leaving orphan", "key", key, "error", err)
			}
		}
	}

	return nil
}

// WatchComments streams newest-first snapshots of an address's thread.
func (srv *commentService) WatchComments(ctx context.Context, addressID string, fn repository.CommentSnapshotFunc) (repository.CancelFunc, error) {
	cancel, err := srv.commentRepo.WatchComments(ctx, addressID, fn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch comments")
	}

	return cancel, nil
}
