package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"placemark/internal/domain/entity"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/repository"
	"placemark/internal/infra/firestore/model"
)

// commentRepository implements repository.CommentRepository over the
// comment subcollection nested under each address document.
type commentRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(client *firestore.Client, logger *slog.Logger) repository.CommentRepository {
	return &commentRepository{
		client: client,
		logger: logger,
	}
}

func (repo *commentRepository) ensureConfigured() error {
	if repo.client == nil {
		return errors.WithStack(domainerrors.ErrBackendNotConfigured)
	}

	return nil
}

func (repo *commentRepository) thread(addressID string) *firestore.CollectionRef {
	return repo.client.Collection(addressCollection).Doc(addressID).Collection(commentCollection)
}

// AddComment persists a new comment and returns the backend-assigned ID.
func (repo *commentRepository) AddComment(ctx context.Context, comment *entity.Comment) (string, error) {
	if err := repo.ensureConfigured(); err != nil {
		return "", err
	}

	ref, _, err := repo.thread(comment.AddressID).Add(ctx, model.FromCommentEntity(comment))
	if err != nil {
		return "", errors.Wrap(err, "failed to create comment document")
	}

	return ref.ID, nil
}

// GetComment retrieves the authoritative comment record.
func (repo *commentRepository) GetComment(ctx context.Context, addressID, commentID string) (*entity.Comment, error) {
	if err := repo.ensureConfigured(); err != nil {
		return nil, err
	}

	snap, err := repo.thread(addressID).Doc(commentID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errors.WithStack(repository.ErrCommentNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get comment document")
	}

	comment, ok := repo.decodeComment(snap, addressID)
	if !ok {
		return nil, errors.WithStack(repository.ErrCommentNotFound)
	}

	return comment, nil
}

// DeleteComment removes the comment record.
func (repo *commentRepository) DeleteComment(ctx context.Context, addressID, commentID string) error {
	if err := repo.ensureConfigured(); err != nil {
		return err
	}

	if _, err := repo.thread(addressID).Doc(commentID).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete comment document")
	}

	return nil
}

// WatchComments streams snapshots of the address's comment thread,
// newest-first.
func (repo *commentRepository) WatchComments(ctx context.Context, addressID string, fn repository.CommentSnapshotFunc) (repository.CancelFunc, error) {
	if err := repo.ensureConfigured(); err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	query := repo.thread(addressID).OrderBy("createdAt", firestore.Desc)
	snapshots := query.Snapshots(watchCtx)

	go func() {
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					repo.logger.Error("comment listener stopped",
						slog.String("address_id", addressID),
						slog.Any("error", err),
					)
				}

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				repo.logger.Error("failed to read comment snapshot documents", slog.Any("error", err))

				continue
			}

			comments := make([]*entity.Comment, 0, len(docs))
			for _, doc := range docs {
				if comment, ok := repo.decodeComment(doc, addressID); ok {
					comments = append(comments, comment)
				}
			}

			// The query already orders by createdAt descending; re-sorting
			// stably pins the order for documents whose server timestamp is
			// still unresolved within this snapshot.
			sortCommentsNewestFirst(comments)

			fn(comments)
		}
	}()

	return repository.CancelFunc(cancel), nil
}

func (repo *commentRepository) decodeComment(doc *firestore.DocumentSnapshot, addressID string) (*entity.Comment, bool) {
	var data model.CommentDoc
	if err := doc.DataTo(&data); err != nil {
		repo.logger.Warn("dropping malformed comment document",
			slog.String("doc_id", doc.Ref.ID),
			slog.Any("error", err),
		)

		return nil, false
	}

	if !data.Valid() {
		repo.logger.Warn("dropping comment document with missing required fields",
			slog.String("doc_id", doc.Ref.ID),
		)

		return nil, false
	}

	return data.ToEntity(doc.Ref.ID, addressID), true
}
