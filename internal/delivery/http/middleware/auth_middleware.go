// Package middleware holds middleware specific to the HTTP API delivery.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/service"
)

// Context keys set by Authenticate for handlers to read.
const (
	keyUserID    = "userID"
	keyUserEmail = "userEmail"
)

// AuthMiddleware validates Firebase ID tokens on protected routes.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate is the core middleware function that validates the bearer ID token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		identity, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set user info on the context for handlers to use
		c.Set(keyUserID, identity.UID)
		c.Set(keyUserEmail, identity.Email)

		return next(c)
	}
}

// GetUserID reads the authenticated user's UID set by Authenticate.
func GetUserID(c echo.Context) string {
	id, _ := c.Get(keyUserID).(string)

	return id
}

// GetUserEmail reads the authenticated user's email set by Authenticate.
func GetUserEmail(c echo.Context) string {
	email, _ := c.Get(keyUserEmail).(string)

	return email
}

// GetIdentity rebuilds the authenticated identity from the request context.
func GetIdentity(c echo.Context) *entity.Identity {
	return &entity.Identity{
		UID:   GetUserID(c),
		Email: GetUserEmail(c),
	}
}
