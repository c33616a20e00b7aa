// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Provider discriminates the two account variants. Local accounts carry a
// password hash; Google accounts carry the provider-scoped identity instead.
type Provider string

const (
	ProviderLocal  Provider = "Local"
	ProviderGoogle Provider = "Google"
)

// ParseProvider maps a wire value to a Provider, defaulting to Local the way
// the client does when no provider is sent.
func ParseProvider(raw string) Provider {
	if raw == string(ProviderGoogle) {
		return ProviderGoogle
	}

	return ProviderLocal
}

// Account is the credential record for one person under one provider.
// The two variants are stored and looked up independently; the system does not
// unify identity across providers even when emails collide.
type Account struct {
	ID           uuid.UUID // Unique identifier of the account within its variant.
	Provider     Provider  // Variant tag; set once at creation.
	Name         string    // Display name.
	Email        string    // Unique within the variant's table.
	PasswordHash string    // bcrypt hash; only set for the Local variant.
	GoogleID     string    // Google 'sub' claim; only set for the Google variant.
	Avatar       string    // Avatar image URL.

	// RefreshTokens is the live set of currently redeemable refresh tokens.
	// A token appears at most once. The whole list is overwritten on persist.
	RefreshTokens []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRefreshToken reports whether token is in the live set.
func (a *Account) HasRefreshToken(token string) bool {
	return slices.Contains(a.RefreshTokens, token)
}

// AddRefreshToken appends a freshly issued refresh token to the live set.
func (a *Account) AddRefreshToken(token string) {
	a.RefreshTokens = append(a.RefreshTokens, token)
}

// RemoveRefreshToken deletes token from the live set. Redeemed tokens are
// removed the instant they are consumed; they are one-time use.
func (a *Account) RemoveRefreshToken(token string) {
	a.RefreshTokens = slices.DeleteFunc(a.RefreshTokens, func(t string) bool {
		return t == token
	})
}

// ClearRefreshTokens revokes every outstanding session. Used when a replayed
// refresh token signals compromise.
func (a *Account) ClearRefreshTokens() {
	a.RefreshTokens = []string{}
}
