// Package api is the thin HTTP interface the sync layer uses to mirror its
// collections to the backend. One client per collection, one HTTP call per
// operation: no retries, no batching, no timeout beyond what the caller's
// context imposes. Failure is reported to the caller, which decides whether
// it matters.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mayank-0789/azclone-1/pkg/global"
)

// Client carries the base URL and the underlying http.Client every
// per-collection client shares. The base URL points at the service root; the
// /api prefix is added here.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

// Cart returns the cart collection client.
func (c *Client) Cart() *CartClient { return &CartClient{c} }

// Wishlist returns the wishlist collection client.
func (c *Client) Wishlist() *WishlistClient { return &WishlistClient{c} }

// Orders returns the orders collection client.
func (c *Client) Orders() *OrdersClient { return &OrdersClient{c} }

// Reviews returns the reviews collection client.
func (c *Client) Reviews() *ReviewsClient { return &ReviewsClient{c} }

type envelope struct {
	Success bool                     `json:"success"`
	Data    json.RawMessage          `json:"data"`
	Message string                   `json:"message"`
	Errors  []global.ValidationError `json:"errors"`
}

// do issues one request and decodes the response envelope into out when out
// is non-nil. Any non-2xx status or success=false envelope is an error.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(blob)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
	}
	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s %s: %s", method, path, msg)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode payload for %s %s: %w", method, path, err)
		}
	}
	return nil
}
