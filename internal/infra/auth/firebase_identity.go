// Package auth adapts Firebase authentication: email/password sign-in via
// the Identity Toolkit REST API and ID-token verification via the Admin SDK.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"placemark/config"
	"placemark/internal/domain/entity"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/service"
)

const defaultIdentityToolkitEndpoint = "https://identitytoolkit.googleapis.com"

const requestTimeout = 15 * time.Second

// identityProvider implements service.IdentityProvider against the Identity
// Toolkit REST API. The Admin SDK exposes no password grant, so sign-in and
// sign-up go through the same REST surface the client SDKs use.
type identityProvider struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger

	mu        sync.Mutex
	current   *entity.Identity
	listeners map[int]service.IdentityChangeFunc
	nextID    int
}

// NewIdentityProvider is the constructor for identityProvider.
func NewIdentityProvider(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	apiKey := ""
	if cfg.Firebase.Configured() {
		apiKey = cfg.Firebase.APIKey
	}

	return &identityProvider{
		apiKey:     apiKey,
		endpoint:   defaultIdentityToolkitEndpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
		listeners:  map[int]service.IdentityChangeFunc{},
	}
}

// CurrentIdentity returns the signed-in identity, if any.
func (p *identityProvider) CurrentIdentity() (*entity.Identity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current, p.current != nil
}

// Loading reports whether the initial identity state is still unknown.
// This process holds no persisted session, so the state resolves to
// "absent" immediately after construction.
func (p *identityProvider) Loading() bool {
	return false
}

// OnIdentityChange registers a listener. The returned cancel is idempotent.
func (p *identityProvider) OnIdentityChange(fn service.IdentityChangeFunc) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

// signInResponse is the relevant subset of the Identity Toolkit reply.
type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type identityToolkitError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn authenticates with email/password.
func (p *identityProvider) SignIn(ctx context.Context, email, password string) (*service.AuthResult, error) {
	return p.authenticate(ctx, "accounts:signInWithPassword", email, password, domainerrors.ErrInvalidCredentials)
}

// SignUp creates an account and signs it in.
func (p *identityProvider) SignUp(ctx context.Context, email, password string) (*service.AuthResult, error) {
	return p.authenticate(ctx, "accounts:signUp", email, password, domainerrors.ErrValidationFailed)
}

// SignOut clears the current identity and notifies listeners.
func (p *identityProvider) SignOut(ctx context.Context) error {
	if p.apiKey == "" {
		return errors.WithStack(domainerrors.ErrBackendNotConfigured)
	}

	p.setIdentity(nil)

	return nil
}

func (p *identityProvider) authenticate(ctx context.Context, action, email, password string, rejection *domainerrors.BaseError) (*service.AuthResult, error) {
	if p.apiKey == "" {
		return nil, errors.WithStack(domainerrors.ErrBackendNotConfigured)
	}

	payload, err := json.Marshal(map[string]any{
		"email":             strings.TrimSpace(email),
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode auth request")
	}

	url := p.endpoint + "/v1/" + action + "?key=" + p.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build auth request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "auth request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Surface the backend-supplied message verbatim.
		var backendErr identityToolkitError
		if err := json.NewDecoder(resp.Body).Decode(&backendErr); err != nil || backendErr.Error.Message == "" {
			return nil, errors.WithStack(rejection)
		}

		return nil, errors.WithStack(rejection.WithDetails(backendErr.Error.Message))
	}

	var body signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode auth response")
	}

	identity := &entity.Identity{
		UID:      body.LocalID,
		Email:    body.Email,
		PhotoURL: pictureClaim(body.IDToken),
	}

	p.setIdentity(identity)

	return &service.AuthResult{Identity: identity, IDToken: body.IDToken}, nil
}

// setIdentity swaps the current identity and notifies listeners, but only
// when the principal actually changed: a refresh of the same UID is silent.
func (p *identityProvider) setIdentity(identity *entity.Identity) {
	p.mu.Lock()

	if p.current.SameUser(identity) {
		p.current = identity
		p.mu.Unlock()

		return
	}

	p.current = identity
	listeners := make([]service.IdentityChangeFunc, 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(identity)
	}
}

// pictureClaim reads the profile photo claim from the ID token. The token
// was just issued by the backend over TLS, so the claims are parsed without
// signature verification; the token is never trusted for authorization here.
func pictureClaim(idToken string) string {
	if idToken == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return ""
	}

	picture, _ := claims["picture"].(string)

	return picture
}
