// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/service"
)

// AuthUsecase defines the interface for authentication business operations.
type AuthUsecase interface {
	SignIn(ctx context.Context, input *SignInInput) (*service.AuthResult, error)
	SignUp(ctx context.Context, input *SignUpInput) (*service.AuthResult, error)
	SignOut(ctx context.Context) error
	CurrentIdentity() (*entity.Identity, bool)
	OnIdentityChange(fn service.IdentityChangeFunc) func()
}

// --- Input DTOs ---

// SignInInput defines the credentials for an email/password sign-in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
