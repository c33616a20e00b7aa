// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches a lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailTaken is returned when a local registration reuses an email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrIdentityTaken is returned when an OAuth registration reuses a
	// provider identity.
	ErrIdentityTaken = errors.New("provider identity already registered")
)

// AccountRepository is the credential store. The Local and Google variants
// live in independent tables; every operation dispatches on the provider tag
// exactly once, inside the implementation.
type AccountRepository interface {
	// CreateLocal persists a new password-based account.
	CreateLocal(ctx context.Context, account *entity.Account) error

	// CreateOAuth persists a new provider-identity account.
	CreateOAuth(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves an account by email within one variant's table.
	FindByEmail(ctx context.Context, provider entity.Provider, email string) (*entity.Account, error)

	// FindByID retrieves an account by ID within one variant's table.
	FindByID(ctx context.Context, provider entity.Provider, id uuid.UUID) (*entity.Account, error)

	// FindByGoogleID retrieves an OAuth account by its provider-scoped identity.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.Account, error)

	// PersistRefreshTokens overwrites the stored refresh-token list with the
	// account's in-memory list. Last-writer-wins; no optimistic concurrency.
	PersistRefreshTokens(ctx context.Context, account *entity.Account) error

	// UpdateProfile persists the mutable profile fields (name, avatar).
	UpdateProfile(ctx context.Context, account *entity.Account) error
}
