package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/online-shop/internal/auth"
)

func seedCustomer(t *testing.T, store *memCustomers, name, email, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	c, err := store.Create(context.Background(), name, email, hash)
	require.NoError(t, err)
	return c.ID
}

func TestCustomerHandler_UpdateSelfOnly(t *testing.T) {
	t.Parallel()

	store := newMemCustomers()
	h := NewCustomerHandler(store, bcrypt.MinCost)
	e := echo.New()

	alice := seedCustomer(t, store, "Alice", "a@x.com", "secret1")
	bob := seedCustomer(t, store, "Bob", "b@x.com", "secret2")

	// Bob cannot patch Alice's profile; the profile reads as absent.
	c, rec := authedRequest(e, http.MethodPatch, "/v1/customers/"+alice, `{"name":"Hacked"}`, bob)
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues(alice)
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Alice", store.byID[alice].Name)

	// Alice can.
	c, rec = authedRequest(e, http.MethodPatch, "/v1/customers/"+alice, `{"name":"Alicia"}`, alice)
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues(alice)
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alicia", store.byID[alice].Name)
}

func TestCustomerHandler_UpdateRehashesPassword(t *testing.T) {
	t.Parallel()

	store := newMemCustomers()
	h := NewCustomerHandler(store, bcrypt.MinCost)
	e := echo.New()

	alice := seedCustomer(t, store, "Alice", "a@x.com", "secret1")

	c, rec := authedRequest(e, http.MethodPatch, "/v1/customers/"+alice, `{"password":"newsecret"}`, alice)
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues(alice)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	stored := store.byID[alice]
	assert.NotEqual(t, "newsecret", stored.PasswordHash)
	assert.True(t, auth.VerifyPassword(stored.PasswordHash, "newsecret"))
	assert.False(t, auth.VerifyPassword(stored.PasswordHash, "secret1"))
	// The hash never shows up in the response.
	assert.NotContains(t, rec.Body.String(), stored.PasswordHash)
}

func TestCustomerHandler_UpdateDuplicateEmail(t *testing.T) {
	t.Parallel()

	store := newMemCustomers()
	h := NewCustomerHandler(store, bcrypt.MinCost)
	e := echo.New()

	alice := seedCustomer(t, store, "Alice", "a@x.com", "secret1")
	seedCustomer(t, store, "Bob", "b@x.com", "secret2")

	c, rec := authedRequest(e, http.MethodPatch, "/v1/customers/"+alice, `{"email":"b@x.com"}`, alice)
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues(alice)
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCustomerHandler_DeleteSelfOnly(t *testing.T) {
	t.Parallel()

	store := newMemCustomers()
	h := NewCustomerHandler(store, bcrypt.MinCost)
	e := echo.New()

	alice := seedCustomer(t, store, "Alice", "a@x.com", "secret1")
	bob := seedCustomer(t, store, "Bob", "b@x.com", "secret2")

	c, rec := authedRequest(e, http.MethodDelete, "/v1/customers/"+alice, "", bob)
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues(alice)
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = authedRequest(e, http.MethodDelete, "/v1/customers/"+alice, "", alice)
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues(alice)
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, stillThere := store.byID[alice]
	assert.False(t, stillThere)
}

func TestCustomerHandler_GetDoesNotLeakHash(t *testing.T) {
	t.Parallel()

	store := newMemCustomers()
	h := NewCustomerHandler(store, bcrypt.MinCost)
	e := echo.New()

	alice := seedCustomer(t, store, "Alice", "a@x.com", "secret1")

	c, rec := authedRequest(e, http.MethodGet, "/v1/customers/"+alice, "", alice)
	c.SetPath("/v1/customers/:id")
	c.SetParamNames("id")
	c.SetParamValues(alice)
	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@x.com")
	assert.NotContains(t, rec.Body.String(), store.byID[alice].PasswordHash)
	assert.NotContains(t, rec.Body.String(), "password")
}
