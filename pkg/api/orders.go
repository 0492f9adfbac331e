package api

import (
	"context"
	"net/http"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// OrdersClient mirrors the orders collection. Orders are append-only: no
// update and no cancel exist on the wire.
type OrdersClient struct {
	c *Client
}

// GetAll fetches the session's orders, newest first.
func (oc *OrdersClient) GetAll(ctx context.Context, sessionID string) ([]models.Order, error) {
	var orders []models.Order
	err := oc.c.do(ctx, http.MethodGet, "/orders/"+sessionID, nil, &orders)
	return orders, err
}

// Create submits a fully-built order. The client-generated id is kept; no
// server-assigned id is reconciled back.
func (oc *OrdersClient) Create(ctx context.Context, order models.Order) error {
	return oc.c.do(ctx, http.MethodPost, "/orders", order, nil)
}

// GetOne fetches one order's details.
func (oc *OrdersClient) GetOne(ctx context.Context, sessionID, orderID string) (models.Order, error) {
	var order models.Order
	err := oc.c.do(ctx, http.MethodGet, "/orders/"+sessionID+"/"+orderID, nil, &order)
	return order, err
}
