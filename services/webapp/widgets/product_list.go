package widgets

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"ecommerce-platform/services/webapp/models"
)

type ProductList struct {
	source   ProductSource
	logger   *log.Logger
	products []models.Product
}

func NewProductList(source ProductSource, logger *log.Logger) *ProductList {
	return &ProductList{
		source: source,
		logger: logger,
	}
}

// Mount fetches the product listing once. On failure the error is logged and
// the current list is kept.
func (w *ProductList) Mount(ctx context.Context) {
	products, err := w.source.ListProducts(ctx)
	if err != nil {
		w.logger.Printf("Error fetching products: %v", err)
		return
	}
	w.products = products
}

func (w *ProductList) Products() []models.Product {
	return append([]models.Product(nil), w.products...)
}

// Lines returns one "name - $price" line per product, in response order.
func (w *ProductList) Lines() []string {
	lines := make([]string, 0, len(w.products))
	for _, p := range w.products {
		lines = append(lines, FormatProduct(p))
	}
	return lines
}

func (w *ProductList) Render() string {
	var b strings.Builder
	b.WriteString("Product Listing\n")
	for _, line := range w.Lines() {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}

// FormatProduct prints the price as the shortest decimal that round-trips,
// so 1000 renders as "1000" and 999.99 as "999.99".
func FormatProduct(p models.Product) string {
	return p.Name + " - $" + strconv.FormatFloat(p.Price, 'f', -1, 64)
}
