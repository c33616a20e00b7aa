package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccount_RefreshTokenSet(t *testing.T) {
	account := &Account{}

	account.AddRefreshToken("a")
	account.AddRefreshToken("b")

	assert.True(t, account.HasRefreshToken("a"))
	assert.False(t, account.HasRefreshToken("c"))

	account.RemoveRefreshToken("a")
	assert.False(t, account.HasRefreshToken("a"))
	assert.True(t, account.HasRefreshToken("b"))

	account.ClearRefreshTokens()
	assert.Empty(t, account.RefreshTokens)
	assert.NotNil(t, account.RefreshTokens)
}

func TestParseProvider(t *testing.T) {
	assert.Equal(t, ProviderGoogle, ParseProvider("Google"))
	assert.Equal(t, ProviderLocal, ParseProvider("Local"))
	assert.Equal(t, ProviderLocal, ParseProvider(""))
	assert.Equal(t, ProviderLocal, ParseProvider("anything-else"))
}
