package models

import "time"

// OrderPlacedEvent mirrors the message the API publishes after POST /orders.
type OrderPlacedEvent struct {
	EventID   string    `json:"event_id"`
	ProductID string    `json:"product_id"`
	Quantity  string    `json:"quantity"`
	PlacedAt  time.Time `json:"placed_at"`
}
