package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/online-shop/internal/model"
)

type CustomerRepo struct{ DB *sql.DB }

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

// CustomerUpdate lists the mutable customer fields. Nil means "leave
// unchanged". PasswordHash must already be a bcrypt hash; the
// repository never sees a plaintext password.
type CustomerUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// Create inserts a customer with a fresh UUID and returns the stored
// row. A duplicate email yields ErrEmailExists.
func (r *CustomerRepo) Create(ctx context.Context, name, email, passwordHash string) (model.Customer, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO customers (id, name, email, password_hash) VALUES (?,?,?,?)",
		id, name, email, passwordHash)
	if err != nil {
		if isDuplicateKey(err) {
			return model.Customer{}, ErrEmailExists
		}
		return model.Customer{}, err
	}
	return r.GetByID(ctx, id)
}

// GetByEmail fetches a customer by exact email match.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (model.Customer, error) {
	return r.get(ctx, "email", email)
}

// GetByID fetches a customer by id.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (model.Customer, error) {
	return r.get(ctx, "id", id)
}

func (r *CustomerRepo) get(ctx context.Context, column, value string) (model.Customer, error) {
	var c model.Customer
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, created_at, updated_at FROM customers WHERE "+column+"=? LIMIT 1",
		value).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Customer{}, ErrNotFound
	}
	return c, err
}

// List returns all customers.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, email, password_hash, created_at, updated_at FROM customers ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update applies the non-nil fields to the customer and returns the
// updated row. Changing the email to one already in use yields
// ErrEmailExists; an unknown id yields ErrNotFound.
func (r *CustomerRepo) Update(ctx context.Context, id string, f CustomerUpdate) (model.Customer, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Customer{}, err
	}

	set := []string{}
	args := []any{}
	if f.Name != nil {
		set = append(set, "name=?")
		args = append(args, *f.Name)
	}
	if f.Email != nil {
		set = append(set, "email=?")
		args = append(args, *f.Email)
	}
	if f.PasswordHash != nil {
		set = append(set, "password_hash=?")
		args = append(args, *f.PasswordHash)
	}
	if len(set) > 0 {
		args = append(args, id)
		q := "UPDATE customers SET " + strings.Join(set, ", ") + " WHERE id=?"
		if _, err := r.DB.ExecContext(ctx, q, args...); err != nil {
			if isDuplicateKey(err) {
				return model.Customer{}, ErrEmailExists
			}
			return model.Customer{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a customer; an unknown id yields ErrNotFound.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM customers WHERE id=?", id)
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
