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

// AddressHandler holds dependencies for address-related handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAddress handles the address creation request. The photo, when
// present, rides the JSON body base64-encoded.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var input *usecase.CreateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), middleware.GetUserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressView(address), "Address created")
}

// GetAddress returns a single address, subject to visibility rules.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	address, err := h.uc.GetAddress(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressView(address), "")
}

// DeleteAddress removes an address owned by the caller.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	if err := h.uc.DeleteAddress(c.Request().Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted")
}

// StreamAddress streams the live state of one address as server-sent events.
// A null event means the address no longer exists.
func (h *AddressHandler) StreamAddress(c echo.Context) error {
	ctx := c.Request().Context()

	emit := sseStream(c)
	cancel, err := h.uc.WatchAddress(ctx, c.Param("id"), func(address *entity.Address) {
		if address == nil {
			emit(nil)

			return
		}
		emit(toAddressView(address))
	})
	if err != nil {
		return errors.WithStack(err)
	}
	defer cancel()

	<-ctx.Done()

	return nil
}

// ShareQR renders the address share code as a PNG.
func (h *AddressHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.ShareQR(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
