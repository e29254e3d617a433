package widgets

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ecommerce-platform/services/webapp/models"
)

type UserLogin struct {
	service  LoginService
	notifier Notifier
	logger   *log.Logger
	username string
	password string
}

func NewUserLogin(service LoginService, notifier Notifier, logger *log.Logger) *UserLogin {
	return &UserLogin{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

func (w *UserLogin) SetUsername(v string) { w.username = v }
func (w *UserLogin) SetPassword(v string) { w.password = v }

func (w *UserLogin) Username() string { return w.username }

// Submit sends both fields as they are. Fields keep their values afterwards.
func (w *UserLogin) Submit(ctx context.Context) {
	message, err := w.service.Login(ctx, models.LoginRequest{
		Username: w.username,
		Password: w.password,
	})
	if err != nil {
		w.logger.Printf("Login failed: %v", err)
		return
	}
	w.notifier.Alert(message)
}

func (w *UserLogin) Render() string {
	return fmt.Sprintf("User Login\n  Username: %s\n  Password: %s\n",
		w.username, strings.Repeat("*", len(w.password)))
}
