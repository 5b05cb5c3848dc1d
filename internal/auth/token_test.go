package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", time.Hour)
	tok, exp, err := issuer.Issue("customer-123", "a@x.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "customer-123", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.NotNil(t, claims.IssuedAt)
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", -time.Second)
	tok, _, err := issuer.Issue("customer-123", "a@x.com")
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenIssuer_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", 0)

	sign := func(exp time.Time) string {
		t2 := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "customer-123",
				IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
				ExpiresAt: jwt.NewNumericDate(exp),
			},
			Email: "a@x.com",
		})
		s, err := t2.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return s
	}

	// Still inside the TTL: accepted.
	_, err := issuer.Verify(sign(time.Now().Add(time.Minute)))
	assert.NoError(t, err)

	// Just past the TTL: rejected, no leeway.
	_, err = issuer.Verify(sign(time.Now().Add(-time.Second)))
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("right-secret", time.Hour)
	tok, _, err := issuer.Issue("customer-123", "a@x.com")
	require.NoError(t, err)

	other := NewTokenIssuer("wrong-secret", time.Hour)
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", time.Hour)
	for _, raw := range []string{"", "not.a.jwt", "a.b"} {
		_, err := issuer.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}
}

func TestTokenIssuer_MissingSubject(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", time.Hour)
	tok, _, err := issuer.Issue("", "a@x.com")
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsUnsignedAlg(t *testing.T) {
	t.Parallel()

	// alg=none tokens must never be accepted.
	t2 := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "customer-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := t2.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	issuer := NewTokenIssuer("test-secret", time.Hour)
	_, err = issuer.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
