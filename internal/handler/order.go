package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-shop/internal/model"
	"github.com/iliyamo/online-shop/internal/repository"
)

// OrderStore is the slice of the order repository the handler consumes.
type OrderStore interface {
	Create(ctx context.Context, customerID string, productIDs []string, totalCents int64) (model.Order, error)
	GetByID(ctx context.Context, id string) (model.Order, error)
	ListForCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	DeleteForCustomer(ctx context.Context, customerID, id string) error
}

// OrderEventPublisher announces committed orders to the message broker.
type OrderEventPublisher interface {
	OrderPlaced(ctx context.Context, o model.Order) error
}

type OrderHandler struct {
	Orders OrderStore
	Events OrderEventPublisher // optional; nil disables publishing
}

func NewOrderHandler(s OrderStore, ev OrderEventPublisher) *OrderHandler {
	return &OrderHandler{Orders: s, Events: ev}
}

type createOrderReq struct {
	ProductIDs []string `json:"product_ids"`
	TotalCents int64    `json:"total_cents"`
}

// Create handles POST /v1/orders. The order is always placed for the
// authenticated customer regardless of the request body. A broker
// failure never fails the order.
func (h *OrderHandler) Create(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.ProductIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_ids required"})
	}
	if req.TotalCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "total must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.Orders.Create(ctx, customerID, req.ProductIDs, req.TotalCents)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create order failed"})
	}
	if h.Events != nil {
		_ = h.Events.OrderPlaced(ctx, o)
	}
	return c.JSON(http.StatusCreated, o)
}

// List handles GET /v1/orders and returns the caller's own orders.
func (h *OrderHandler) List(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListForCustomer(ctx, customerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list orders failed"})
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /v1/orders/:id. Someone else's order reads as not
// found.
func (h *OrderHandler) Get(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.Orders.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load order failed"})
	}
	if o.CustomerID != customerID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	}
	return c.JSON(http.StatusOK, o)
}

// Delete handles DELETE /v1/orders/:id with the same ownership contract
// as Get.
func (h *OrderHandler) Delete(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Orders.DeleteForCustomer(ctx, customerID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete order failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
