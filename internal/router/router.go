// Package router wires handlers to routes. Routes are either public or
// protected; protected routes live in a group carrying the auth guard,
// public routes are registered outside it and bypass the guard
// entirely.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-shop/internal/handler"
)

// Register mounts every route on the Echo instance. guard is the
// authentication middleware for protected routes; cache wraps public
// catalog reads and may be a pass-through.
func Register(e *echo.Echo, a *handler.AuthHandler, p *handler.ProductHandler, cu *handler.CustomerHandler, o *handler.OrderHandler, guard, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Public: registration, login, and catalog browsing.
	ag := e.Group("/v1/auth")
	ag.POST("/register", a.Register)
	ag.POST("/login", a.Login)

	e.GET("/v1/products", p.List, cache)

	// Protected: everything else requires a valid bearer token.
	v1 := e.Group("/v1", guard)
	v1.GET("/me", a.Me)

	v1.POST("/products", p.Create)
	v1.GET("/products/:id", p.Get)
	v1.PATCH("/products/:id", p.Update)
	v1.DELETE("/products/:id", p.Delete)

	v1.GET("/customers", cu.List)
	v1.GET("/customers/:id", cu.Get)
	v1.PATCH("/customers/:id", cu.Update)
	v1.DELETE("/customers/:id", cu.Delete)

	v1.POST("/orders", o.Create)
	v1.GET("/orders", o.List)
	v1.GET("/orders/:id", o.Get)
	v1.DELETE("/orders/:id", o.Delete)
}
