// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"net/http"
	"strings"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the bearer guard for downstream handlers.
const (
	KeyAccountID = "accountID"
	KeyProvider  = "provider"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the request context. Every rejection is a plain 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Access Denied"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Access Denied"})
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Access Denied"})
		}

		c.Set(KeyAccountID, claims.AccountID)
		c.Set(KeyProvider, claims.Provider)

		return next(c)
	}
}

// AccountID extracts the authenticated account ID set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(KeyAccountID).(uuid.UUID)

	return id, ok
}

// Provider extracts the authenticated account variant set by Authenticate.
func Provider(c echo.Context) entity.Provider {
	if provider, ok := c.Get(KeyProvider).(entity.Provider); ok {
		return provider
	}

	return entity.ProviderLocal
}
