package auth

import (
	"testing"
	"time"

	"github.com/adiritzhakii/food-by-me/config"
	"github.com/adiritzhakii/food-by-me/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Token = config.TokenConfig{
		Secret:     "test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}

	return cfg
}

func TestNewJWTService_ConfigValidation(t *testing.T) {
	cfg := testTokenConfig()
	cfg.Token.Secret = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = testTokenConfig()
	cfg.Token.AccessTTL = 0
	_, err = NewJWTService(cfg)
	assert.Error(t, err)

	cfg = testTokenConfig()
	cfg.Token.RefreshTTL = cfg.Token.AccessTTL
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	accountID := uuid.New()
	pair, err := svc.Issue(accountID, entity.ProviderGoogle)
	require.NoError(t, err)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	for _, token := range []string{pair.AccessToken, pair.RefreshToken} {
		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, accountID, claims.AccountID)
		assert.Equal(t, entity.ProviderGoogle, claims.Provider)
		assert.NotEmpty(t, claims.Nonce)
	}
}

func TestJWTService_PairsAreUnique(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	accountID := uuid.New()
	first, err := svc.Issue(accountID, entity.ProviderLocal)
	require.NoError(t, err)
	second, err := svc.Issue(accountID, entity.ProviderLocal)
	require.NoError(t, err)

	// Same subject, same instant, still distinct tokens.
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}

func TestJWTService_Verify_RejectsWrongSecret(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.Token.Secret = "other-secret"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	pair, err := otherSvc.Issue(uuid.New(), entity.ProviderLocal)
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_Verify_RejectsExpired(t *testing.T) {
	cfg := testTokenConfig()
	cfg.Token.AccessTTL = -2 * time.Hour
	cfg.Token.RefreshTTL = -time.Hour

	svc := &jwtService{
		secret:     []byte(cfg.Token.Secret),
		accessTTL:  cfg.Token.AccessTTL,
		refreshTTL: cfg.Token.RefreshTTL,
	}

	pair, err := svc.Issue(uuid.New(), entity.ProviderLocal)
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken)
	assert.Error(t, err)
	_, err = svc.Verify(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_Verify_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	_, err = svc.Verify("not-a-token")
	assert.Error(t, err)
}
