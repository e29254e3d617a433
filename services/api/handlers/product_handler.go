package handlers

import (
	"net/http"

	"ecommerce-platform/services/api/models"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products []models.Product
}

func NewProductHandler(products []models.Product) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.products)
}
