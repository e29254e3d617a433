package consumer

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"sync"

	"ecommerce-platform/services/order-events-tail/models"
)

// productOrders is what the tail has seen for one product id.
type productOrders struct {
	events     int64
	quantities []string
}

// EventLog decodes order events from all workers and keeps per-product
// totals for the shutdown summary.
type EventLog struct {
	mu          sync.Mutex
	totalEvents int64
	products    map[string]*productOrders
}

func NewEventLog() *EventLog {
	return &EventLog{
		products: make(map[string]*productOrders),
	}
}

// Record decodes body as an OrderPlacedEvent, prints it and counts it. An
// undecodable body is returned as an error and leaves the totals untouched.
func (l *EventLog) Record(workerID int, body []byte) (models.OrderPlacedEvent, error) {
	var event models.OrderPlacedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("malformed order event: %w", err)
	}

	l.mu.Lock()
	l.totalEvents++
	orders, ok := l.products[event.ProductID]
	if !ok {
		orders = &productOrders{}
		l.products[event.ProductID] = orders
	}
	orders.events++
	orders.quantities = append(orders.quantities, event.Quantity)
	l.mu.Unlock()

	log.Printf("Worker %d: order placed for product %s (quantity %s) at %s [event %s]",
		workerID, event.ProductID, event.Quantity, event.PlacedAt.Format("2006-01-02 15:04:05"), event.EventID)
	return event, nil
}

func (l *EventLog) TotalEvents() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalEvents
}

func (l *EventLog) ProductEvents(productID string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if orders, ok := l.products[productID]; ok {
		return orders.events
	}
	return 0
}

// Quantities returns the quantity text of every order for productID, in
// arrival order.
func (l *EventLog) Quantities(productID string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if orders, ok := l.products[productID]; ok {
		return append([]string(nil), orders.quantities...)
	}
	return nil
}

// PrintSummary writes the total and, per product sorted by id, the event
// count and the quantity text of each order.
func (l *EventLog) PrintSummary(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "ORDER EVENTS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Total events: %d\n", l.totalEvents)

	ids := make([]string, 0, len(l.products))
	for productID := range l.products {
		ids = append(ids, productID)
	}
	sort.Strings(ids)
	for _, productID := range ids {
		orders := l.products[productID]
		fmt.Fprintf(w, "  product %s: orders %d, quantities %s\n",
			productID, orders.events, strings.Join(orders.quantities, ", "))
	}
	fmt.Fprintln(w, strings.Repeat("=", 60))
}
