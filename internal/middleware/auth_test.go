package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/online-shop/internal/auth"
	"github.com/iliyamo/online-shop/internal/model"
	"github.com/iliyamo/online-shop/internal/repository"
)

type fakeResolver struct {
	byID map[string]model.Customer
}

func (f *fakeResolver) GetByID(_ context.Context, id string) (model.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return model.Customer{}, repository.ErrNotFound
	}
	return c, nil
}

func runGuard(t *testing.T, issuer *auth.TokenIssuer, resolver CustomerResolver, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen echo.Context
	h := Auth(issuer, resolver)(func(c echo.Context) error {
		seen = c
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, seen
}

func TestAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	rec, seen := runGuard(t, issuer, &fakeResolver{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		rec, seen := runGuard(t, issuer, &fakeResolver{}, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Nil(t, seen)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	rec, seen := runGuard(t, issuer, &fakeResolver{}, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := auth.NewTokenIssuer("test-secret", -time.Second)
	tok, _, err := expired.Issue("customer-1", "a@x.com")
	require.NoError(t, err)

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	resolver := &fakeResolver{byID: map[string]model.Customer{
		"customer-1": {ID: "customer-1", Email: "a@x.com"},
	}}
	rec, seen := runGuard(t, issuer, resolver, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuth_DeletedAccount(t *testing.T) {
	t.Parallel()

	// The token is still valid but its subject no longer exists.
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	tok, _, err := issuer.Issue("customer-gone", "gone@x.com")
	require.NoError(t, err)

	rec, seen := runGuard(t, issuer, &fakeResolver{byID: map[string]model.Customer{}}, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuth_AttachesIdentity(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	tok, _, err := issuer.Issue("customer-1", "a@x.com")
	require.NoError(t, err)

	resolver := &fakeResolver{byID: map[string]model.Customer{
		"customer-1": {ID: "customer-1", Email: "a@x.com", PasswordHash: "$2a$10$hash"},
	}}
	rec, seen := runGuard(t, issuer, resolver, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "customer-1", seen.Get(ContextUserID))
	assert.Equal(t, "a@x.com", seen.Get(ContextEmail))
}
