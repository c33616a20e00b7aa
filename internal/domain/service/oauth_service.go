package service

import "context"

// OAuthUser is the identity an external provider vouches for.
type OAuthUser struct {
	GoogleID string // Provider-specific user ID (Google's 'sub' claim).
	Email    string
	Name     string
	Avatar   string // URL of the provider-hosted profile picture.
}

// OAuthVerifier verifies external sign-in credentials. The provider's
// verification rules are an opaque collaborator; the domain only sees the
// resolved identity or a rejection.
type OAuthVerifier interface {
	// VerifyCredential verifies an ID token sent by the client and returns
	// the identity it asserts.
	VerifyCredential(ctx context.Context, credential string) (*OAuthUser, error)
}
