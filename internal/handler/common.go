// Package handler defines the HTTP handlers: authentication, products,
// customers and orders.
package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-shop/internal/middleware"
)

// currentUserID returns the authenticated customer ID attached by the
// auth guard. It only fails when a handler is mistakenly registered
// outside the guarded group.
func currentUserID(c echo.Context) (string, error) {
	if v, ok := c.Get(middleware.ContextUserID).(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("no authenticated user in context")
}
