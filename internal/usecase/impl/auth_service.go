// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/service"
	"placemark/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identity service.IdentityProvider
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	identity service.IdentityProvider,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		identity: identity,
		logger:   logger,
	}
}

// SignIn authenticates the principal with email/password.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*service.AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	srv.logger.Info("Signing in", "email", email)

	result, err := srv.identity.SignIn(ctx, email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in")
	}

	return result, nil
}

// SignUp registers a new account and signs it in.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*service.AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	srv.logger.Info("Signing up", "email", email)

	result, err := srv.identity.SignUp(ctx, email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign up")
	}

	return result, nil
}

// SignOut clears the current identity.
func (srv *authService) SignOut(ctx context.Context) error {
	if err := srv.identity.SignOut(ctx); err != nil {
		return errors.Wrap(err, "failed to sign out")
	}

	return nil
}

// CurrentIdentity returns the signed-in identity, if any.
func (srv *authService) CurrentIdentity() (*entity.Identity, bool) {
	return srv.identity.CurrentIdentity()
}

// OnIdentityChange registers a listener for principal changes.
func (srv *authService) OnIdentityChange(fn service.IdentityChangeFunc) func() {
	return srv.identity.OnIdentityChange(fn)
}
