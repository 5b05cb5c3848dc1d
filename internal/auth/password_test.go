package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_NotPlaintext(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", h)
	assert.NotEmpty(t, h)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	assert.True(t, VerifyPassword(h1, "secret1"))
	assert.True(t, VerifyPassword(h2, "secret1"))
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.False(t, VerifyPassword(h, "secret2"))
	assert.False(t, VerifyPassword(h, ""))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	// Garbage in the hash column must read as "no match", not panic.
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "secret1"))
	assert.False(t, VerifyPassword("", "secret1"))
}
