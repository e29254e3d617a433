package handlers

import (
	"ecommerce-platform/services/api/models"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the four API routes onto a gin engine. publisher may be nil.
func NewRouter(publisher OrderPublisher, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.Use(middleware...)

	productHandler := NewProductHandler(models.Catalog)
	loginHandler := NewLoginHandler()
	orderHandler := NewOrderHandler(publisher)

	// Routes
	handle(router, "GET", "/", Health)
	handle(router, "GET", "/products", productHandler.ListProducts)
	handle(router, "POST", "/login", loginHandler.Login)
	handle(router, "POST", "/orders", orderHandler.PlaceOrder)

	return router
}

// handle registers path and, for anything but the root, path with a
// trailing slash, so "/products/" is served like "/products".
func handle(router *gin.Engine, method, path string, handler gin.HandlerFunc) {
	router.Handle(method, path, handler)
	if path != "/" {
		router.Handle(method, path+"/", handler)
	}
}
