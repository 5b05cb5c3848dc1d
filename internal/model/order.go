package model

import "time"

// Order mirrors the `orders` table. CustomerID is always the identity
// that placed the order; the product IDs are stored as a JSON array in
// a text column.
type Order struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProductIDs []string  `json:"product_ids"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}
