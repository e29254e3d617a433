package handlers

import (
	"fmt"
	"net/http"

	"ecommerce-platform/services/api/models"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct{}

func NewLoginHandler() *LoginHandler {
	return &LoginHandler{}
}

// Login handles POST /login. Any username is accepted; the password is
// read and ignored.
func (h *LoginHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	bindOptional(c, &req)

	c.String(http.StatusOK, LoginMessage(req.Username))
}

func LoginMessage(username models.Field) string {
	return fmt.Sprintf("User %s logged in successfully.", username)
}
