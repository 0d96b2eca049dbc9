package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_Generate(t *testing.T) {
	svc := NewTokenService()

	session, err := svc.GenerateSessionToken()
	require.NoError(t, err)
	assert.Len(t, session, 64)

	reset, err := svc.GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, reset, 48)

	other, err := svc.GenerateSessionToken()
	require.NoError(t, err)
	assert.NotEqual(t, session, other)
}

func TestTokenService_HashToken(t *testing.T) {
	svc := NewTokenService()

	// SHA-256 of "abc"
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		svc.HashToken("abc"))
	assert.Equal(t, svc.HashToken("token"), svc.HashToken("token"))
	assert.NotEqual(t, svc.HashToken("token"), svc.HashToken("token2"))
}
