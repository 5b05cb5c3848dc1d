package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/online-shop/internal/model"
)

type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

// ProductUpdate lists the mutable product fields; nil means "leave
// unchanged". OwnerID is not here on purpose: ownership is fixed at
// creation.
type ProductUpdate struct {
	Name        *string
	Description *string
	PriceCents  *int64
}

// Create inserts a product owned by ownerID and returns the stored row.
func (r *ProductRepo) Create(ctx context.Context, ownerID, name, description string, priceCents int64) (model.Product, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO products (id, name, description, price_cents, owner_id) VALUES (?,?,?,?,?)",
		id, name, description, priceCents, ownerID)
	if err != nil {
		return model.Product{}, err
	}
	return r.GetByID(ctx, id)
}

// GetByID fetches a product by id.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, description, price_cents, owner_id, created_at, updated_at FROM products WHERE id=? LIMIT 1",
		id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, ErrNotFound
	}
	return p, err
}

// List returns all products.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, description, price_cents, owner_id, created_at, updated_at FROM products ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateForOwner applies the non-nil fields to a product, but only when
// it is owned by ownerID. The row is re-read inside the same request;
// both "absent" and "not yours" come back as ErrNotFound.
func (r *ProductRepo) UpdateForOwner(ctx context.Context, ownerID, id string, f ProductUpdate) (model.Product, error) {
	var owned string
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM products WHERE id=? AND owner_id=? LIMIT 1",
		id, ownerID).Scan(&owned)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}

	set := []string{}
	args := []any{}
	if f.Name != nil {
		set = append(set, "name=?")
		args = append(args, *f.Name)
	}
	if f.Description != nil {
		set = append(set, "description=?")
		args = append(args, *f.Description)
	}
	if f.PriceCents != nil {
		set = append(set, "price_cents=?")
		args = append(args, *f.PriceCents)
	}
	if len(set) > 0 {
		args = append(args, id, ownerID)
		q := "UPDATE products SET " + strings.Join(set, ", ") + " WHERE id=? AND owner_id=?"
		if _, err := r.DB.ExecContext(ctx, q, args...); err != nil {
			return model.Product{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// DeleteForOwner removes a product only when it is owned by ownerID.
// Zero affected rows means the product is absent or belongs to someone
// else; both yield ErrNotFound.
func (r *ProductRepo) DeleteForOwner(ctx context.Context, ownerID, id string) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM products WHERE id=? AND owner_id=?", id, ownerID)
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
