package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// CartClient mirrors the cart collection for one session at a time.
type CartClient struct {
	c *Client
}

// GetAll fetches the server's view of the session's cart: product snapshots
// joined with quantities.
func (cc *CartClient) GetAll(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := cc.c.do(ctx, http.MethodGet, "/cart/"+sessionID, nil, &lines)
	return lines, err
}

// AddOne adds quantity of a product to the session's cart. The server
// increments the existing row when one exists.
func (cc *CartClient) AddOne(ctx context.Context, sessionID string, productID, quantity int) error {
	return cc.c.do(ctx, http.MethodPost, "/cart", models.AddToCartRequest{
		ProductID: productID,
		Quantity:  quantity,
		SessionID: sessionID,
	}, nil)
}

// RemoveOne deletes one product's line from the session's cart.
func (cc *CartClient) RemoveOne(ctx context.Context, sessionID string, productID int) error {
	return cc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%s/%d", sessionID, productID), nil, nil)
}

// UpdateOne sets the quantity of one product's line. Quantities of zero or
// less delete the line server-side.
func (cc *CartClient) UpdateOne(ctx context.Context, sessionID string, productID, quantity int) error {
	return cc.c.do(ctx, http.MethodPut, fmt.Sprintf("/cart/%s/%d?quantity=%d", sessionID, productID, quantity), nil, nil)
}

// ClearAll deletes every line of the session's cart.
func (cc *CartClient) ClearAll(ctx context.Context, sessionID string) error {
	return cc.c.do(ctx, http.MethodDelete, "/cart/"+sessionID, nil, nil)
}
