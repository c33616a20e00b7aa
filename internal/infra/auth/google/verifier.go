// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/adiritzhakii/food-by-me/config"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"

	"github.com/pkg/errors"
)

// idTokenClaims represents the claims in a Google ID token.
type idTokenClaims struct {
	Iss           string `json:"iss"`
	Sub           string `json:"sub"`
	Aud           string `json:"aud"`
	Exp           int64  `json:"exp"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// verifier implements service.OAuthVerifier for Google Sign-In.
type verifier struct {
	clientID string
	logger   *slog.Logger
}

// NewVerifier is the constructor for the Google credential verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &verifier{
		clientID: clientID,
		logger:   logger,
	}
}

// VerifyCredential verifies a Google ID token and returns the identity it
// asserts.
func (v *verifier) VerifyCredential(ctx context.Context, credential string) (*service.OAuthUser, error) {
	claims, err := v.parseIDToken(credential)
	if err != nil {
		v.logger.Warn("Failed to parse Google ID token", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if err := v.verifyClaims(claims); err != nil {
		v.logger.Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	return &service.OAuthUser{
		GoogleID: claims.Sub,
		Email:    claims.Email,
		Name:     claims.Name,
		Avatar:   claims.Picture,
	}, nil
}

func (v *verifier) parseIDToken(idToken string) (*idTokenClaims, error) {
	parts := strings.Split(idToken, ".")
	if len(parts) != 3 {
		return nil, errors.New("malformed ID token")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode token payload")
	}

	claims := &idTokenClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal token claims")
	}

	return claims, nil
}

func (v *verifier) verifyClaims(claims *idTokenClaims) error {
	if claims.Iss != "https://accounts.google.com" && claims.Iss != "accounts.google.com" {
		return errors.Errorf("unexpected issuer: %s", claims.Iss)
	}

	if v.clientID != "" && claims.Aud != v.clientID {
		return errors.New("audience mismatch")
	}

	if time.Now().Unix() >= claims.Exp {
		return errors.New("token expired")
	}

	if claims.Sub == "" {
		return errors.New("missing subject")
	}

	return nil
}
