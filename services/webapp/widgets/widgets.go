// Package widgets holds the client's UI units. Each widget owns its form
// values, makes one API call per action and reports the outcome either
// through a Notifier (user facing) or a logger (diagnostics only).
package widgets

import (
	"context"

	"ecommerce-platform/services/webapp/models"
)

type ProductSource interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type LoginService interface {
	Login(ctx context.Context, req models.LoginRequest) (string, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (string, error)
}

// Notifier shows a message to the user and returns once it is dismissed.
type Notifier interface {
	Alert(message string)
}
