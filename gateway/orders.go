package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nakhazaman/restaurant-foh/models"
)

// CreateOrderRequest adalah body POST /orders ke API pusat.
type CreateOrderRequest struct {
	TableID string             `json:"tableId"`
	Notes   string             `json:"notes"`
	Items   []models.OrderLine `json:"items"`
}

type statusUpdateRequest struct {
	Status models.OrderStatus `json:"status"`
}

func (c *Client) ListTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if _, err := c.do(ctx, http.MethodGet, "/table", "", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if _, err := c.do(ctx, http.MethodGet, "/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits a new order. The returned message is the server's
// confirmation text when it sends one.
func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (*models.Order, string, error) {
	var order models.Order
	message, err := c.do(ctx, http.MethodPost, "/orders", token, req, &order)
	if err != nil {
		return nil, message, err
	}
	return &order, message, nil
}

// UpdateOrderStatus requests a status transition; the server owns the result
// (including freeing the table), the caller refetches to observe it.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (string, error) {
	path := "/orders/" + url.PathEscape(orderID) + "/status"
	return c.do(ctx, http.MethodPut, path, token, statusUpdateRequest{Status: status}, nil)
}
