package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"placemark/internal/domain/entity"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/repository"
	mockRepo "placemark/internal/mocks/repository"
	mockSvc "placemark/internal/mocks/service"
	"placemark/internal/usecase"
)

func createTestCommentService(t *testing.T) (
	usecase.CommentUsecase,
	*mockRepo.MockCommentRepository,
	*mockRepo.MockAddressRepository,
	*mockSvc.MockPhotoStorage,
) {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	photos := mockSvc.NewMockPhotoStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewCommentService(commentRepo, addressRepo, photos, logger)

	return service, commentRepo, addressRepo, photos
}

func testAuthor() *entity.Identity {
	return &entity.Identity{UID: "u1", Email: "user@example.com"}
}

func TestCommentService_AddComment_Success(t *testing.T) {
	service, commentRepo, addressRepo, _ := createTestCommentService(t)

	ctx := context.Background()
	addressRepo.EXPECT().
		GetAddress(ctx, "addr-1").
		Return(&entity.Address{ID: "addr-1", UserID: "owner"}, nil)

	commentRepo.EXPECT().
		AddComment(ctx, mock.Anything).
		Run(func(ctx context.Context, comment *entity.Comment) {
			assert.Equal(t, "addr-1", comment.AddressID)
			assert.Equal(t, "u1", comment.UserID)
			assert.Equal(t, "user@example.com", comment.AuthorEmail)
			assert.Equal(t, "looks great", comment.Text)
		}).
		Return("c-1", nil)

	comment, err := service.AddComment(ctx, testAuthor(), "addr-1", &usecase.AddCommentInput{
		Text: "  looks great  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "c-1", comment.ID)
}

func TestCommentService_AddComment_EmptyRejectedBeforeAnyCall(t *testing.T) {
	service, _, _, _ := createTestCommentService(t)

	// No expectations set: the rejection must happen before any backend call.
	_, err := service.AddComment(context.Background(), testAuthor(), "addr-1", &usecase.AddCommentInput{
		Text: "   \n\t ",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyComment))
}

func TestCommentService_AddComment_EmptyTextWithPhotoStillRejected(t *testing.T) {
	service, _, _, _ := createTestCommentService(t)

	// A photo never substitutes for text; no expectations set, the
	// rejection must happen before any backend call or upload.
	_, err := service.AddComment(context.Background(), testAuthor(), "addr-1", &usecase.AddCommentInput{
		Text:             "   ",
		Photo:            []byte("jpeg"),
		PhotoContentType: "image/jpeg",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyComment))
}

func TestCommentService_AddComment_PhotoUploadedBeforeWrite(t *testing.T) {
	service, commentRepo, addressRepo, photos := createTestCommentService(t)

	ctx := context.Background()
	var calls []string

	addressRepo.EXPECT().
		GetAddress(ctx, "addr-1").
		Return(&entity.Address{ID: "addr-1"}, nil)

	photos.EXPECT().
		Upload(ctx, mock.Anything, []byte("jpeg"), "image/jpeg").
		Run(func(ctx context.Context, key string, data []byte, contentType string) {
			calls = append(calls, "upload")
		}).
		Return("https://photos.example.com/addressComments/addr-1/u1/1.jpg", nil)

	commentRepo.EXPECT().
		AddComment(ctx, mock.Anything).
		Run(func(ctx context.Context, comment *entity.Comment) {
			calls = append(calls, "write")
			assert.Equal(t, "nice spot", comment.Text)
			assert.NotEmpty(t, comment.PhotoURL)
		}).
		Return("c-1", nil)

	_, err := service.AddComment(ctx, testAuthor(), "addr-1", &usecase.AddCommentInput{
		Text:             "nice spot",
		Photo:            []byte("jpeg"),
		PhotoContentType: "image/jpeg",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"upload", "write"}, calls)
}

func TestCommentService_AddComment_MissingParentAddress(t *testing.T) {
	service, _, addressRepo, _ := createTestCommentService(t)

	ctx := context.Background()
	addressRepo.EXPECT().GetAddress(ctx, "gone").Return(nil, repository.ErrAddressNotFound)

	_, err := service.AddComment(ctx, testAuthor(), "gone", &usecase.AddCommentInput{Text: "hello"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestCommentService_DeleteComment_Success(t *testing.T) {
	service, commentRepo, _, photos := createTestCommentService(t)

	ctx := context.Background()
	stored := &entity.Comment{
		ID:        "c-1",
		AddressID: "addr-1",
		UserID:    "u1",
		PhotoURL:  "https://photos.example.com/addressComments/addr-1/u1/1.jpg",
	}

	commentRepo.EXPECT().GetComment(ctx, "addr-1", "c-1").Return(stored, nil)
	commentRepo.EXPECT().DeleteComment(ctx, "addr-1", "c-1").Return(nil)
	photos.EXPECT().KeyFromURL(stored.PhotoURL).Return("addressComments/addr-1/u1/1.jpg", true)
	photos.EXPECT().Delete(ctx, "addressComments/addr-1/u1/1.jpg").Return(nil)

	require.NoError(t, service.DeleteComment(ctx, "u1", "addr-1", "c-1"))
}

func TestCommentService_DeleteComment_OnlyAuthorMayDelete(t *testing.T) {
	service, commentRepo, _, _ := createTestCommentService(t)

	ctx := context.Background()
	commentRepo.EXPECT().
		GetComment(ctx, "addr-1", "c-1").
		Return(&entity.Comment{ID: "c-1", AddressID: "addr-1", UserID: "u1"}, nil)

	err := service.DeleteComment(ctx, "someone-else", "addr-1", "c-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentOwnershipViolation))
}

func TestCommentService_DeleteComment_CleanupFailureIsSwallowed(t *testing.T) {
	service, commentRepo, _, photos := createTestCommentService(t)

	ctx := context.Background()
	stored := &entity.Comment{
		ID:        "c-1",
		AddressID: "addr-1",
		UserID:    "u1",
		PhotoURL:  "https://photos.example.com/addressComments/addr-1/u1/1.jpg",
	}

	commentRepo.EXPECT().GetComment(ctx, "addr-1", "c-1").Return(stored, nil)
	commentRepo.EXPECT().DeleteComment(ctx, "addr-1", "c-1").Return(nil)
	photos.EXPECT().KeyFromURL(stored.PhotoURL).Return("addressComments/addr-1/u1/1.jpg", true)
	photos.EXPECT().Delete(ctx, "addressComments/addr-1/u1/1.jpg").Return(errors.New("object locked"))

	require.NoError(t, service.DeleteComment(ctx, "u1", "addr-1", "c-1"))
}

func TestCommentService_WatchComments_Passthrough(t *testing.T) {
	service, commentRepo, _, _ := createTestCommentService(t)

	ctx := context.Background()
	cancelled := false

	commentRepo.EXPECT().
		WatchComments(ctx, "addr-1", mock.Anything).
		Return(repository.CancelFunc(func() { cancelled = true }), nil)

	cancel, err := service.WatchComments(ctx, "addr-1", func([]*entity.Comment) {})
	require.NoError(t, err)

	cancel()
	assert.True(t, cancelled)
}
