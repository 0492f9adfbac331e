package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// WishlistClient mirrors the wishlist collection.
type WishlistClient struct {
	c *Client
}

func (wc *WishlistClient) GetAll(ctx context.Context, sessionID string) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	err := wc.c.do(ctx, http.MethodGet, "/wishlist/"+sessionID, nil, &entries)
	return entries, err
}

// AddOne is idempotent server-side: adding a product already on the wishlist
// is a no-op.
func (wc *WishlistClient) AddOne(ctx context.Context, sessionID string, productID int) error {
	return wc.c.do(ctx, http.MethodPost, "/wishlist", models.AddToWishlistRequest{
		ProductID: productID,
		SessionID: sessionID,
	}, nil)
}

func (wc *WishlistClient) RemoveOne(ctx context.Context, sessionID string, productID int) error {
	return wc.c.do(ctx, http.MethodDelete, fmt.Sprintf("/wishlist/%s/%d", sessionID, productID), nil, nil)
}
