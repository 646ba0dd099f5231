package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubFeedUsecase replays its snapshots synchronously on subscribe, the way
// a live merge recompute can fire more than once before the handler reads.
type stubFeedUsecase struct {
	snapshots [][]*entity.Address
}

func (s *stubFeedUsecase) WatchCombinedAddresses(_ context.Context, _ string, fn func([]*entity.Address)) (repository.CancelFunc, error) {
	for _, snapshot := range s.snapshots {
		fn(snapshot)
	}

	return repository.CancelFunc(func() {}), nil
}

func TestGetFeed_ReturnsFreshestSnapshot(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc := &stubFeedUsecase{snapshots: [][]*entity.Address{
		{{ID: "a1", Name: "first"}},
		{{ID: "a1", Name: "first"}, {ID: "a2", Name: "arrived later"}},
	}}
	h := NewFeedHandler(uc, discardLogger())

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// The later snapshot must win over the one already buffered.
	assert.Contains(t, rec.Body.String(), `"a2"`)
}

func TestGetFeed_BboxFiltersSnapshot(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?bbox=121,24,122,26", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc := &stubFeedUsecase{snapshots: [][]*entity.Address{{
		{ID: "inside", Latitude: 25.0, Longitude: 121.5},
		{ID: "outside", Latitude: 48.8, Longitude: 2.3},
	}}}
	h := NewFeedHandler(uc, discardLogger())

	require.NoError(t, h.GetFeed(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inside"`)
	assert.NotContains(t, rec.Body.String(), `"outside"`)
}
