// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"errors"
	"time"

	"github.com/adiritzhakii/food-by-me/config"
	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. Both token halves are signed with the same secret; they
// differ only in lifetime, so the refresh check is distinguished purely by its
// storage consult at the call site.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService. A missing secret or a
// refresh lifetime not exceeding the access lifetime is a deployment error
// and fails startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token.Secret == "" {
		return nil, errors.New("token signing secret must be provided")
	}
	if cfg.Token.AccessTTL <= 0 || cfg.Token.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	if cfg.Token.RefreshTTL <= cfg.Token.AccessTTL {
		return nil, errors.New("refresh token lifetime must exceed access token lifetime")
	}

	return &jwtService{
		secret:     []byte(cfg.Token.Secret),
		accessTTL:  cfg.Token.AccessTTL,
		refreshTTL: cfg.Token.RefreshTTL,
	}, nil
}

// Issue mints a new access/refresh pair for the given account identity.
// The shared nonce makes every pair unique even within one process tick.
func (s *jwtService) Issue(accountID uuid.UUID, provider entity.Provider) (*service.TokenPair, error) {
	nonce := uuid.New().String()

	accessToken, err := s.sign(accountID, provider, nonce, s.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.sign(accountID, provider, nonce, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Verify checks the signature and expiry of a token string.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

func (s *jwtService) sign(accountID uuid.UUID, provider entity.Provider, nonce string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AccountID: accountID,
		Provider:  provider,
		Nonce:     nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}
