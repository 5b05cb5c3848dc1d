package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-shop/internal/auth"
	"github.com/iliyamo/online-shop/internal/model"
	"github.com/iliyamo/online-shop/internal/repository"
)

// CustomerStore is the slice of the customer repository the handler
// consumes.
type CustomerStore interface {
	GetByID(ctx context.Context, id string) (model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, id string, f repository.CustomerUpdate) (model.Customer, error)
	Delete(ctx context.Context, id string) error
}

// CustomerHandler serves the customer profile endpoints. A profile is
// owned by the customer it describes: mutations are permitted only when
// the target id equals the authenticated identity, and a mismatch reads
// as not found rather than forbidden.
type CustomerHandler struct {
	Customers  CustomerStore
	BcryptCost int
}

func NewCustomerHandler(s CustomerStore, bcryptCost int) *CustomerHandler {
	return &CustomerHandler{Customers: s, BcryptCost: bcryptCost}
}

type updateCustomerReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// List handles GET /v1/customers (protected).
func (h *CustomerHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cs, err := h.Customers.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list customers failed"})
	}
	return c.JSON(http.StatusOK, cs)
}

// Get handles GET /v1/customers/:id (protected).
func (h *CustomerHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust, err := h.Customers.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load customer failed"})
	}
	return c.JSON(http.StatusOK, cust)
}

// Update handles PATCH /v1/customers/:id. Only the profile's own
// customer may update it. A provided password is re-hashed before it
// reaches the store; the old hash is never compared or returned.
func (h *CustomerHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	if id != userID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}

	var req updateCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Email != nil {
		e := strings.TrimSpace(*req.Email)
		if e == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email must not be empty"})
		}
		req.Email = &e
	}

	upd := repository.CustomerUpdate{Name: req.Name, Email: req.Email}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 6 characters"})
		}
		hash, err := auth.HashPassword(*req.Password, h.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update customer failed"})
		}
		upd.PasswordHash = &hash
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cust, err := h.Customers.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		case errors.Is(err, repository.ErrEmailExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update customer failed"})
		}
	}
	return c.JSON(http.StatusOK, cust)
}

// Delete handles DELETE /v1/customers/:id. Self-only, like Update.
func (h *CustomerHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	if id != userID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Customers.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete customer failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
