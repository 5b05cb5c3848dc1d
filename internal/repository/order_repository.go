package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/online-shop/internal/model"
)

type OrderRepo struct{ DB *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{DB: db} }

// Create inserts an order for customerID. The product ID list is
// stored as a JSON array in a text column.
func (r *OrderRepo) Create(ctx context.Context, customerID string, productIDs []string, totalCents int64) (model.Order, error) {
	id := uuid.NewString()
	ids, err := json.Marshal(productIDs)
	if err != nil {
		return model.Order{}, err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO orders (id, customer_id, product_ids, total_cents) VALUES (?,?,?,?)",
		id, customerID, string(ids), totalCents)
	if err != nil {
		return model.Order{}, err
	}
	return r.GetByID(ctx, id)
}

// GetByID fetches an order by id.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (model.Order, error) {
	var o model.Order
	var ids string
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, customer_id, product_ids, total_cents, created_at FROM orders WHERE id=? LIMIT 1",
		id).Scan(&o.ID, &o.CustomerID, &ids, &o.TotalCents, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	if err := json.Unmarshal([]byte(ids), &o.ProductIDs); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// ListForCustomer returns the orders placed by customerID.
func (r *OrderRepo) ListForCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, customer_id, product_ids, total_cents, created_at FROM orders WHERE customer_id=? ORDER BY created_at",
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		var o model.Order
		var ids string
		if err := rows.Scan(&o.ID, &o.CustomerID, &ids, &o.TotalCents, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(ids), &o.ProductIDs); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// DeleteForCustomer removes an order only when it belongs to
// customerID; absence and a foreign order both yield ErrNotFound.
func (r *OrderRepo) DeleteForCustomer(ctx context.Context, customerID, id string) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM orders WHERE id=? AND customer_id=?", id, customerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
