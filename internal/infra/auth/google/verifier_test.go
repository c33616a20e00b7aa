package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/adiritzhakii/food-by-me/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVerifier(clientID string) *verifier {
	cfg := &config.Config{}
	if clientID != "" {
		cfg.GoogleOAuth = &config.GoogleOAuthConfig{ClientID: clientID}
	}

	return NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*verifier)
}

func encodeIDToken(t *testing.T, claims idTokenClaims) string {
	t.Helper()

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	segment := base64.RawURLEncoding.EncodeToString
	header := segment([]byte(`{"alg":"RS256","typ":"JWT"}`))

	return header + "." + segment(payload) + ".signature"
}

func validClaims() idTokenClaims {
	return idTokenClaims{
		Iss:     "https://accounts.google.com",
		Sub:     "google-sub-1",
		Aud:     "client-1",
		Exp:     time.Now().Add(time.Hour).Unix(),
		Email:   "user@example.com",
		Name:    "Test User",
		Picture: "http://example.com/p.png",
	}
}

func TestVerifier_VerifyCredential(t *testing.T) {
	v := testVerifier("client-1")

	user, err := v.VerifyCredential(context.Background(), encodeIDToken(t, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "google-sub-1", user.GoogleID)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "http://example.com/p.png", user.Avatar)
}

func TestVerifier_RejectsBadTokens(t *testing.T) {
	v := testVerifier("client-1")
	ctx := context.Background()

	_, err := v.VerifyCredential(ctx, "not-a-jwt")
	assert.Error(t, err)

	wrongIssuer := validClaims()
	wrongIssuer.Iss = "https://evil.example.com"
	_, err = v.VerifyCredential(ctx, encodeIDToken(t, wrongIssuer))
	assert.Error(t, err)

	wrongAudience := validClaims()
	wrongAudience.Aud = "someone-else"
	_, err = v.VerifyCredential(ctx, encodeIDToken(t, wrongAudience))
	assert.Error(t, err)

	expired := validClaims()
	expired.Exp = time.Now().Add(-time.Hour).Unix()
	_, err = v.VerifyCredential(ctx, encodeIDToken(t, expired))
	assert.Error(t, err)

	noSubject := validClaims()
	noSubject.Sub = ""
	_, err = v.VerifyCredential(ctx, encodeIDToken(t, noSubject))
	assert.Error(t, err)
}

func TestVerifier_NoClientIDSkipsAudienceCheck(t *testing.T) {
	v := testVerifier("")

	claims := validClaims()
	claims.Aud = "anything"

	_, err := v.VerifyCredential(context.Background(), encodeIDToken(t, claims))
	assert.NoError(t, err)
}
