package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placemark/internal/domain/entity"
	svc "placemark/internal/domain/service"
	mockSvc "placemark/internal/mocks/service"
	"placemark/internal/usecase"
)

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, *mockSvc.MockIdentityProvider) {
	identity := mockSvc.NewMockIdentityProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewAuthService(identity, logger), identity
}

func TestAuthService_SignIn_TrimsEmail(t *testing.T) {
	service, identity := createTestAuthService(t)

	ctx := context.Background()
	identity.EXPECT().
		SignIn(ctx, "user@example.com", "secret").
		Return(&svc.AuthResult{
			Identity: &entity.Identity{UID: "u1", Email: "user@example.com"},
			IDToken:  "issued-token",
		}, nil)

	signedIn, err := service.SignIn(ctx, &usecase.SignInInput{
		Email:    "  user@example.com  ",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", signedIn.Identity.UID)
	assert.Equal(t, "issued-token", signedIn.IDToken)
}

func TestAuthService_CurrentIdentity(t *testing.T) {
	service, identity := createTestAuthService(t)

	identity.EXPECT().CurrentIdentity().Return(&entity.Identity{UID: "u1"}, true)

	current, ok := service.CurrentIdentity()
	require.True(t, ok)
	assert.Equal(t, "u1", current.UID)
}

func TestAuthService_SignOut(t *testing.T) {
	service, identity := createTestAuthService(t)

	ctx := context.Background()
	identity.EXPECT().SignOut(ctx).Return(nil)

	require.NoError(t, service.SignOut(ctx))
}
