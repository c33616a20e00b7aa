package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adiritzhakii/food-by-me/config"
	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	"github.com/adiritzhakii/food-by-me/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Token = config.TokenConfig{
		Secret:     secret,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: time.Hour,
	}

	return cfg
}

func performRequest(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/getProfile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, c
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc, err := auth.NewJWTService(tokenConfig("secret"))
	require.NoError(t, err)
	m := NewAuthMiddleware(tokenSvc)

	accountID := uuid.New()
	pair, err := tokenSvc.Issue(accountID, entity.ProviderGoogle)
	require.NoError(t, err)

	rec, c := performRequest(t, m, "Bearer "+pair.AccessToken)

	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := AccountID(c)
	require.True(t, ok)
	assert.Equal(t, accountID, gotID)
	assert.Equal(t, entity.ProviderGoogle, Provider(c))
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tokenSvc, err := auth.NewJWTService(tokenConfig("secret"))
	require.NoError(t, err)
	m := NewAuthMiddleware(tokenSvc)

	otherSvc, err := auth.NewJWTService(tokenConfig("other-secret"))
	require.NoError(t, err)
	forged, err := otherSvc.Issue(uuid.New(), entity.ProviderLocal)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer garbage"},
		{name: "wrong secret", header: "Bearer " + forged.AccessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := performRequest(t, m, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
