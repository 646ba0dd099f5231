package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/repository"
	"placemark/internal/usecase"
)

// stubCommentUsecase replays its thread snapshots synchronously on subscribe.
type stubCommentUsecase struct {
	snapshots [][]*entity.Comment
}

func (s *stubCommentUsecase) AddComment(context.Context, *entity.Identity, string, *usecase.AddCommentInput) (*entity.Comment, error) {
	panic("not used")
}

func (s *stubCommentUsecase) DeleteComment(context.Context, string, string, string) error {
	panic("not used")
}

func (s *stubCommentUsecase) WatchComments(_ context.Context, _ string, fn repository.CommentSnapshotFunc) (repository.CancelFunc, error) {
	for _, snapshot := range s.snapshots {
		fn(snapshot)
	}

	return repository.CancelFunc(func() {}), nil
}

func TestGetComments_ReturnsFreshestSnapshot(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/addresses/addr-1/comments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("addr-1")

	uc := &stubCommentUsecase{snapshots: [][]*entity.Comment{
		{{ID: "c1", AddressID: "addr-1", Text: "first"}},
		{{ID: "c2", AddressID: "addr-1", Text: "arrived later"}, {ID: "c1", AddressID: "addr-1", Text: "first"}},
	}}
	h := NewCommentHandler(uc, discardLogger())

	require.NoError(t, h.GetComments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// The later snapshot must win over the one already buffered.
	assert.Contains(t, rec.Body.String(), `"c2"`)
}
