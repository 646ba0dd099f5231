package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"placemark/internal/delivery/http/middleware"
	"placemark/internal/delivery/http/response"
	"placemark/internal/domain/entity"
	"placemark/internal/usecase"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddComment appends a comment to an address's thread.
func (h *CommentHandler) AddComment(c echo.Context) error {
	var input *usecase.AddCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.uc.AddComment(c.Request().Context(), middleware.GetIdentity(c), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentView(comment), "Comment added")
}

// DeleteComment removes the caller's comment.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	err := h.uc.DeleteComment(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), c.Param("commentId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted")
}

// GetComments returns the current newest-first snapshot of the thread.
func (h *CommentHandler) GetComments(c echo.Context) error {
	ctx := c.Request().Context()

	snapshots := make(chan []*entity.Comment, 1)
	cancel, err := h.uc.WatchComments(ctx, c.Param("id"), func(comments []*entity.Comment) {
		// Keep only the freshest snapshot: drop a pending stale one first.
		select {
		case <-snapshots:
		default:
		}
		select {
		case snapshots <- comments:
		default:
		}
	})
	if err != nil {
		return errors.WithStack(err)
	}
	defer cancel()

	select {
	case comments := <-snapshots:
		return response.Success(c, http.StatusOK, toCommentViews(comments), "")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// StreamComments streams newest-first thread snapshots as server-sent events.
func (h *CommentHandler) StreamComments(c echo.Context) error {
	ctx := c.Request().Context()

	emit := sseStream(c)
	cancel, err := h.uc.WatchComments(ctx, c.Param("id"), func(comments []*entity.Comment) {
		emit(toCommentViews(comments))
	})
	if err != nil {
		return errors.WithStack(err)
	}
	defer cancel()

	<-ctx.Done()

	return nil
}
