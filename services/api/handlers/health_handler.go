package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const RunningMessage = "E-commerce API is running"

// Health handles GET /
func Health(c *gin.Context) {
	c.String(http.StatusOK, RunningMessage)
}
