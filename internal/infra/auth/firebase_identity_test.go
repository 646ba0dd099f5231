package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/service"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *identityProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &identityProvider{
		apiKey:     "test-key",
		endpoint:   server.URL,
		httpClient: server.Client(),
		logger:     discardLogger(),
		listeners:  map[int]service.IdentityChangeFunc{},
	}
}

func signInHandler(t *testing.T, uid, email string) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId": uid,
			"email":   email,
			"idToken": "issued-token",
		})
	}
}

func TestSignIn_Success(t *testing.T) {
	provider := newTestProvider(t, signInHandler(t, "uid-1", "user@example.com"))

	result, err := provider.SignIn(context.Background(), " user@example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", result.Identity.UID)
	assert.Equal(t, "user@example.com", result.Identity.Email)
	assert.Equal(t, "issued-token", result.IDToken)

	current, ok := provider.CurrentIdentity()
	require.True(t, ok)
	assert.Equal(t, "uid-1", current.UID)
}

func TestSignIn_BackendRejection(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"INVALID_PASSWORD"}}`))
	})

	_, err := provider.SignIn(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	// The backend-supplied message is preserved.
	assert.Equal(t, "INVALID_PASSWORD", appErr.Details())

	_, ok := provider.CurrentIdentity()
	assert.False(t, ok)
}

func TestIdentityChange_EmittedOncePerActualChange(t *testing.T) {
	provider := newTestProvider(t, signInHandler(t, "uid-1", "user@example.com"))

	var mu sync.Mutex
	var seen []*entity.Identity
	cancel := provider.OnIdentityChange(func(identity *entity.Identity) {
		mu.Lock()
		seen = append(seen, identity)
		mu.Unlock()
	})
	defer cancel()

	ctx := context.Background()
	_, err := provider.SignIn(ctx, "user@example.com", "secret")
	require.NoError(t, err)

	// Re-authenticating the same principal must not re-emit.
	_, err = provider.SignIn(ctx, "user@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, provider.SignOut(ctx))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.Equal(t, "uid-1", seen[0].UID)
	assert.Nil(t, seen[1])
}

func TestOnIdentityChange_CancelIsIdempotent(t *testing.T) {
	provider := newTestProvider(t, signInHandler(t, "uid-1", ""))

	calls := 0
	cancel := provider.OnIdentityChange(func(*entity.Identity) { calls++ })

	cancel()
	cancel() // must not panic or double-remove

	_, err := provider.SignIn(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestSignIn_NotConfigured(t *testing.T) {
	provider := &identityProvider{
		apiKey:    "",
		logger:    discardLogger(),
		listeners: map[int]service.IdentityChangeFunc{},
	}

	_, err := provider.SignIn(context.Background(), "user@example.com", "secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))

	_, err = provider.SignUp(context.Background(), "user@example.com", "secret")
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))

	err = provider.SignOut(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrBackendNotConfigured))
}

func TestPictureClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     "uid-1",
		"picture": "https://photos.example.com/users/uid-1/profile.jpg",
	})
	signed, err := token.SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	assert.Equal(t, "https://photos.example.com/users/uid-1/profile.jpg", pictureClaim(signed))
	assert.Empty(t, pictureClaim(""))
	assert.Empty(t, pictureClaim("not-a-jwt"))
}
