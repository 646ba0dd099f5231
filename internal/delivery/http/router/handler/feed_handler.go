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
	"placemark/internal/util"
)

// FeedHandler holds dependencies for the combined address feed.
type FeedHandler struct {
	uc     usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(uc usecase.FeedUsecase, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetFeed returns the current merged feed, optionally filtered to a map
// viewport via ?bbox=minLng,minLat,maxLng,maxLat.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	ctx := c.Request().Context()

	snapshots := make(chan []*entity.Address, 1)
	cancel, err := h.uc.WatchCombinedAddresses(ctx, middleware.GetUserID(c), func(addresses []*entity.Address) {
		// Keep only the freshest snapshot: drop a pending stale one first.
		select {
		case <-snapshots:
		default:
		}
		select {
		case snapshots <- addresses:
		default:
		}
	})
	if err != nil {
		return errors.WithStack(err)
	}
	defer cancel()

	select {
	case addresses := <-snapshots:
		if bbox := c.QueryParam("bbox"); bbox != "" {
			bound, err := util.ParseBound(bbox)
			if err != nil {
				return response.BadRequest(c, "INVALID_BBOX", "Invalid bbox parameter")
			}
			addresses = util.FilterWithinBound(addresses, bound)
		}

		return response.Success(c, http.StatusOK, toAddressViews(addresses), "")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// StreamFeed streams full replacement snapshots of the merged feed as
// server-sent events until the client disconnects.
func (h *FeedHandler) StreamFeed(c echo.Context) error {
	ctx := c.Request().Context()

	emit := sseStream(c)
	cancel, err := h.uc.WatchCombinedAddresses(ctx, middleware.GetUserID(c), func(addresses []*entity.Address) {
		emit(toAddressViews(addresses))
	})
	if err != nil {
		return errors.WithStack(err)
	}
	defer cancel()

	<-ctx.Done()

	return nil
}
