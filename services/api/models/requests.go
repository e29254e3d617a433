package models

import (
	"encoding/json"
	"time"
)

type LoginRequest struct {
	Username Field `json:"username"`
	Password Field `json:"password"`
}

// UnmarshalJSON picks the exact keys "username" and "password"; keys that
// differ only in case are ignored.
func (r *LoginRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	r.Username = pick(fields, "username")
	r.Password = pick(fields, "password")
	return nil
}

type OrderRequest struct {
	ProductID Field `json:"productId"`
	Quantity  Field `json:"quantity"`
}

func (r *OrderRequest) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	r.ProductID = pick(fields, "productId")
	r.Quantity = pick(fields, "quantity")
	return nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func pick(fields map[string]json.RawMessage, key string) Field {
	raw, ok := fields[key]
	if !ok {
		return Field{}
	}
	return NewField(string(raw))
}

// OrderPlacedEvent is published to the order events queue after POST /orders
// when notifications are enabled.
type OrderPlacedEvent struct {
	EventID   string    `json:"event_id"`
	ProductID string    `json:"product_id"`
	Quantity  string    `json:"quantity"`
	PlacedAt  time.Time `json:"placed_at"`
}
