package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"ecommerce-platform/services/api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderPublisher forwards order-placed notifications. It is optional.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error
}

type OrderHandler struct {
	publisher OrderPublisher
	now       func() time.Time
}

// NewOrderHandler returns a handler that publishes to publisher when it is
// non-nil.
func NewOrderHandler(publisher OrderPublisher) *OrderHandler {
	return &OrderHandler{
		publisher: publisher,
		now:       time.Now,
	}
}

// PlaceOrder handles POST /orders. Nothing is recorded; the response only
// echoes the product id.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req models.OrderRequest
	bindOptional(c, &req)

	if h.publisher != nil {
		event := models.OrderPlacedEvent{
			EventID:   uuid.NewString(),
			ProductID: req.ProductID.String(),
			Quantity:  req.Quantity.String(),
			PlacedAt:  h.now().UTC(),
		}
		if err := h.publisher.PublishOrderPlaced(c.Request.Context(), event); err != nil {
			log.Printf("Failed to publish order event %s: %v", event.EventID, err)
		}
	}

	c.String(http.StatusOK, OrderMessage(req.ProductID))
}

func OrderMessage(productID models.Field) string {
	return fmt.Sprintf("Order placed successfully for product %s.", productID)
}
