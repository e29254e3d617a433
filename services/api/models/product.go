package models

type Product struct {
	ID    int32   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog is the fixed product listing served by GET /products.
var Catalog = []Product{
	{ID: 1, Name: "Laptop", Price: 1000},
	{ID: 2, Name: "Phone", Price: 500},
}
