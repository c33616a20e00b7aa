// Package usecase defines the application's business interfaces and the DTOs
// that cross them. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"

	"github.com/google/uuid"
)

// RegisterInput carries a local registration request.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput carries a local login request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// OAuthInput carries the provider credential sent by the client.
type OAuthInput struct {
	Credential string `json:"credential" validate:"required"`
}

// RefreshInput carries the refresh token presented for rotation or logout.
// The subject and variant are resolved from the token itself.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// AccountOutput is the public projection of an account.
type AccountOutput struct {
	ID       uuid.UUID       `json:"_id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Avatar   string          `json:"avatar,omitempty"`
	Provider entity.Provider `json:"provider"`
}

// LoginOutput is returned by both login variants.
type LoginOutput struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ID           uuid.UUID `json:"_id"`
}

// AuthUsecase is the session lifecycle controller: it orchestrates the
// credential store and the token issuer/verifier, enforcing one-time use of
// refresh tokens and revoking every session when a consumed token is replayed.
type AuthUsecase interface {
	// Register creates a local account.
	Register(ctx context.Context, input *RegisterInput) (*AccountOutput, error)

	// Login verifies a local credential and opens a session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// OAuthRegister verifies an external credential and creates the account.
	// Registration is an explicit step, separate from OAuth login.
	OAuthRegister(ctx context.Context, input *OAuthInput) (*AccountOutput, error)

	// OAuthLogin verifies an external credential and opens a session for an
	// already registered identity.
	OAuthLogin(ctx context.Context, input *OAuthInput) (*LoginOutput, error)

	// Refresh redeems a refresh token for a fresh pair. The presented token
	// is consumed even when issuing the replacement fails.
	Refresh(ctx context.Context, input *RefreshInput) (*service.TokenPair, error)

	// Logout validates and consumes the presented refresh token.
	Logout(ctx context.Context, input *RefreshInput) error
}

func ToAccountOutput(account *entity.Account) *AccountOutput {
	return &AccountOutput{
		ID:       account.ID,
		Name:     account.Name,
		Email:    account.Email,
		Avatar:   account.Avatar,
		Provider: account.Provider,
	}
}
