package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"placemark/internal/delivery/http/response"
	"placemark/internal/usecase"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignIn handles the email/password sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionView(result), "Signed in")
}

// SignUp handles the account registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSessionView(result), "Account created")
}

// SignOut clears the current identity.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out")
}
