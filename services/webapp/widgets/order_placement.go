package widgets

import (
	"context"
	"fmt"
	"log"

	"ecommerce-platform/services/webapp/models"
)

type OrderPlacement struct {
	service   OrderService
	notifier  Notifier
	logger    *log.Logger
	productID string
	quantity  string
}

func NewOrderPlacement(service OrderService, notifier Notifier, logger *log.Logger) *OrderPlacement {
	return &OrderPlacement{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

func (w *OrderPlacement) SetProductID(v string) { w.productID = v }
func (w *OrderPlacement) SetQuantity(v string) { w.quantity = v }

func (w *OrderPlacement) Submit(ctx context.Context) {
	message, err := w.service.PlaceOrder(ctx, models.OrderRequest{
		ProductID: w.productID,
		Quantity:  w.quantity,
	})
	if err != nil {
		w.logger.Printf("Order failed: %v", err)
		return
	}
	w.notifier.Alert(message)
}

func (w *OrderPlacement) Render() string {
	return fmt.Sprintf("Place an Order\n  Product ID: %s\n  Quantity: %s\n", w.productID, w.quantity)
}
