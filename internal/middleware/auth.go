// Package middleware provides reusable HTTP middleware: the
// authentication guard for protected routes and a Redis-backed
// response cache for public reads.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-shop/internal/auth"
	"github.com/iliyamo/online-shop/internal/model"
)

// Context keys under which the guard stores the authenticated identity.
// Handlers read them back via c.Get. Only the id and email are ever
// attached, never the password hash.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// CustomerResolver re-resolves a token subject to a live account.
type CustomerResolver interface {
	GetByID(ctx context.Context, id string) (model.Customer, error)
}

// Auth returns the guard applied to every protected route. It extracts
// the bearer token, verifies it, and confirms the subject still exists
// before attaching {user_id, email} to the request context. Every
// failure is a 401 with a generic body; the reason (missing header,
// bad signature, expiry, deleted account) is not distinguished for the
// caller. Public routes are simply registered outside the guarded
// group and never pass through here.
func Auth(verifier *auth.TokenIssuer, customers CustomerResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims, err := verifier.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			// A token can outlive its account; re-check the subject so a
			// deleted customer cannot keep using a still-valid token.
			cust, err := customers.GetByID(c.Request().Context(), claims.Subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(ContextUserID, cust.ID)
			c.Set(ContextEmail, cust.Email)
			return next(c)
		}
	}
}
