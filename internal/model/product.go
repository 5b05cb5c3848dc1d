package model

import "time"

// Product mirrors the `products` table. OwnerID is set to the creating
// customer's ID and never changes afterwards; every mutating operation
// is checked against it.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
