package widgets

import (
	"context"
	"log"
	"strings"
)

const Title = "E-Commerce Platform"

// API is everything the three widgets call.
type API interface {
	ProductSource
	LoginService
	OrderService
}

type App struct {
	Products *ProductList
	Login    *UserLogin
	Order    *OrderPlacement
}

func NewApp(api API, notifier Notifier, logger *log.Logger) *App {
	return &App{
		Products: NewProductList(api, logger),
		Login:    NewUserLogin(api, notifier, logger),
		Order:    NewOrderPlacement(api, notifier, logger),
	}
}

// Mount runs the widgets' on-mount work: the product list fetch.
func (a *App) Mount(ctx context.Context) {
	a.Products.Mount(ctx)
}

func (a *App) Render() string {
	return strings.Join([]string{
		Title + "\n",
		a.Products.Render(),
		a.Login.Render(),
		a.Order.Render(),
	}, "\n")
}
