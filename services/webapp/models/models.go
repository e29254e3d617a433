package models

type Product struct {
	ID    int32   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Form values are sent exactly as typed, so every field is a string.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type OrderRequest struct {
	ProductID string `json:"productId"`
	Quantity  string `json:"quantity"`
}
