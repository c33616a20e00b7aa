package service

import (
	"github.com/adiritzhakii/food-by-me/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by both token halves. Access and
// refresh tokens are signed with the same secret and differ only in lifetime;
// the refresh check diverges at the call site by consulting the stored list.
type Claims struct {
	AccountID uuid.UUID       `json:"sub"`
	Provider  entity.Provider `json:"provider"`
	Nonce     string          `json:"nonce"`
	jwt.RegisteredClaims
}

// TokenPair is one issued access/refresh pair. The refresh half is persisted
// on the account; the access half is never stored server-side.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService defines the interface for minting and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue mints a new token pair for the given account identity. The random
	// nonce makes every pair unique even for the same subject and instant.
	Issue(accountID uuid.UUID, provider entity.Provider) (*TokenPair, error)

	// Verify checks signature and expiry of a token string and returns its
	// claims. It does not touch storage.
	Verify(tokenString string) (*Claims, error)
}
