// Package queue defines the payloads exchanged over the message broker
// and the background consumer for them.
package queue

// OrderQueueName is the durable queue carrying order events.
const OrderQueueName = "order.placed"

// OrderPlacedEvent is published after an order row is committed. It
// carries enough data for downstream consumers to log or notify
// without querying the primary database.
type OrderPlacedEvent struct {
	OrderID    string   `json:"order_id"`
	CustomerID string   `json:"customer_id"`
	ProductIDs []string `json:"product_ids"`
	TotalCents int64    `json:"total_cents"`
	PlacedAt   string   `json:"placed_at"`
}
