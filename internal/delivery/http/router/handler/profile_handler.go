package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"placemark/internal/delivery/http/middleware"
	"placemark/internal/delivery/http/response"
	"placemark/internal/usecase"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdatePhoto replaces the caller's profile photo.
func (h *ProfileHandler) UpdatePhoto(c echo.Context) error {
	var input *usecase.UpdateProfilePhotoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	url, err := h.uc.UpdateProfilePhoto(c.Request().Context(), middleware.GetUserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"photo_url": url}, "Profile photo updated")
}
