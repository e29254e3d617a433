package widgets

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"ecommerce-platform/services/webapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	products []models.Product
	err      error
	logins   []models.LoginRequest
	orders   []models.OrderRequest
}

func (f *fakeAPI) ListProducts(context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (string, error) {
	f.logins = append(f.logins, req)
	if f.err != nil {
		return "", f.err
	}
	return "User " + req.Username + " logged in successfully.", nil
}

func (f *fakeAPI) PlaceOrder(_ context.Context, req models.OrderRequest) (string, error) {
	f.orders = append(f.orders, req)
	if f.err != nil {
		return "", f.err
	}
	return "Order placed successfully for product " + req.ProductID + ".", nil
}

type recordingNotifier struct {
	alerts []string
}

func (n *recordingNotifier) Alert(message string) {
	n.alerts = append(n.alerts, message)
}

func newLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}

func TestProductList_RendersOneLinePerProduct(t *testing.T) {
	tests := []struct {
		name     string
		products []models.Product
		want     []string
	}{
		{"empty", nil, []string{}},
		{"single", []models.Product{{ID: 1, Name: "Laptop", Price: 1000}}, []string{"Laptop - $1000"}},
		{
			"keeps order",
			[]models.Product{
				{ID: 2, Name: "Phone", Price: 500},
				{ID: 1, Name: "Laptop", Price: 1000},
				{ID: 3, Name: "Cable", Price: 9.99},
			},
			[]string{"Phone - $500", "Laptop - $1000", "Cable - $9.99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := newLogger()
			widget := NewProductList(&fakeAPI{products: tt.products}, logger)
			widget.Mount(context.Background())

			assert.Equal(t, tt.want, widget.Lines())
			assert.Empty(t, logs.String())
		})
	}
}

func TestProductList_Render(t *testing.T) {
	logger, _ := newLogger()
	widget := NewProductList(&fakeAPI{products: []models.Product{{ID: 1, Name: "Laptop", Price: 1000}}}, logger)
	widget.Mount(context.Background())

	assert.Equal(t, "Product Listing\n  Laptop - $1000\n", widget.Render())
}

func TestProductList_FailureLeavesListEmpty(t *testing.T) {
	logger, logs := newLogger()
	widget := NewProductList(&fakeAPI{err: errors.New("connection refused")}, logger)
	widget.Mount(context.Background())

	assert.Empty(t, widget.Products())
	assert.Equal(t, "Error fetching products: connection refused\n", logs.String())
}

func TestUserLogin_SubmitAlertsServerText(t *testing.T) {
	api := &fakeAPI{}
	notifier := &recordingNotifier{}
	logger, logs := newLogger()

	widget := NewUserLogin(api, notifier, logger)
	widget.SetUsername("alice")
	widget.SetPassword("x")
	widget.Submit(context.Background())

	assert.Equal(t, []models.LoginRequest{{Username: "alice", Password: "x"}}, api.logins)
	assert.Equal(t, []string{"User alice logged in successfully."}, notifier.alerts)
	assert.Empty(t, logs.String())

	// fields are kept after a successful submit
	assert.Equal(t, "alice", widget.Username())
	assert.Equal(t, "User Login\n  Username: alice\n  Password: *\n", widget.Render())
}

func TestUserLogin_SubmitEmptyFields(t *testing.T) {
	api := &fakeAPI{}
	notifier := &recordingNotifier{}
	logger, _ := newLogger()

	NewUserLogin(api, notifier, logger).Submit(context.Background())

	assert.Equal(t, []models.LoginRequest{{}}, api.logins)
	assert.Len(t, notifier.alerts, 1)
}

func TestUserLogin_FailureIsOnlyLogged(t *testing.T) {
	notifier := &recordingNotifier{}
	logger, logs := newLogger()

	widget := NewUserLogin(&fakeAPI{err: errors.New("unexpected status code 500: boom")}, notifier, logger)
	widget.SetUsername("alice")
	widget.Submit(context.Background())

	assert.Empty(t, notifier.alerts)
	assert.Equal(t, "Login failed: unexpected status code 500: boom\n", logs.String())
}

func TestOrderPlacement_SubmitAlertsServerText(t *testing.T) {
	api := &fakeAPI{}
	notifier := &recordingNotifier{}
	logger, _ := newLogger()

	widget := NewOrderPlacement(api, notifier, logger)
	widget.SetProductID("7")
	widget.SetQuantity("3")
	widget.Submit(context.Background())
	widget.Submit(context.Background())

	assert.Equal(t, []models.OrderRequest{
		{ProductID: "7", Quantity: "3"},
		{ProductID: "7", Quantity: "3"},
	}, api.orders)
	assert.Equal(t, []string{
		"Order placed successfully for product 7.",
		"Order placed successfully for product 7.",
	}, notifier.alerts)
	assert.Equal(t, "Place an Order\n  Product ID: 7\n  Quantity: 3\n", widget.Render())
}

func TestOrderPlacement_FailureIsOnlyLogged(t *testing.T) {
	notifier := &recordingNotifier{}
	logger, logs := newLogger()

	widget := NewOrderPlacement(&fakeAPI{err: errors.New("timeout")}, notifier, logger)
	widget.Submit(context.Background())

	assert.Empty(t, notifier.alerts)
	assert.Equal(t, "Order failed: timeout\n", logs.String())
}

func TestApp_Render(t *testing.T) {
	logger, _ := newLogger()
	app := NewApp(&fakeAPI{products: []models.Product{{ID: 1, Name: "Laptop", Price: 1000}}}, &recordingNotifier{}, logger)
	app.Mount(context.Background())

	out := app.Render()
	require.Contains(t, out, Title)
	assert.Contains(t, out, "Laptop - $1000")
	assert.Contains(t, out, "User Login")
	assert.Contains(t, out, "Place an Order")
}
