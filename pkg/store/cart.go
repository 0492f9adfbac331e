package store

import (
	"context"
	"log"
	"sync"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
	"github.com/mayank-0789/azclone-1/pkg/session"
)

// CartClient is what the cart store needs from the remote side.
type CartClient interface {
	GetAll(ctx context.Context, sessionID string) ([]models.CartLine, error)
	AddOne(ctx context.Context, sessionID string, productID, quantity int) error
	RemoveOne(ctx context.Context, sessionID string, productID int) error
	UpdateOne(ctx context.Context, sessionID string, productID, quantity int) error
	ClearAll(ctx context.Context, sessionID string) error
}

// Cart holds the session's cart lines: at most one line per product id,
// quantity always at least 1.
type Cart struct {
	mu      sync.RWMutex
	items   []models.CartLine
	loading bool

	client   CartClient
	mirror   mirror.Mirror
	sessions *session.Resolver
	users    UserSource
	tasks    tasks
}

func NewCart(client CartClient, m mirror.Mirror, sessions *session.Resolver, users UserSource) *Cart {
	return &Cart{client: client, mirror: m, sessions: sessions, users: users}
}

// Load replaces the cart with the server's view; the server is authoritative
// on load. On failure the state falls back to whatever the mirror holds and
// the error is returned for diagnostics. Concurrent loads are not
// deduplicated: the last response wins.
func (c *Cart) Load(ctx context.Context) error {
	sessionID := c.sessionID()

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	lines, err := c.client.GetAll(ctx, sessionID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		var saved []models.CartLine
		if c.mirror.Load(mirror.KeyCart, &saved) {
			c.items = saved
		}
		return err
	}
	c.items = lines
	c.persistLocked()
	return nil
}

// Add puts one unit of the product in the cart, incrementing the existing
// line's quantity when the product is already there. The remote write is
// fired after the local state is already updated and is never awaited.
func (c *Cart) Add(product models.Product) {
	sessionID := c.sessionID()

	c.mu.Lock()
	merged := false
	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, models.CartLine{Product: product, Quantity: 1})
	}
	c.persistLocked()
	c.mu.Unlock()

	c.tasks.Go("cart add sync", func(ctx context.Context) error {
		return c.client.AddOne(ctx, sessionID, product.ID, 1)
	})
}

// Remove drops the product's line entirely.
func (c *Cart) Remove(productID int) {
	sessionID := c.sessionID()

	c.mu.Lock()
	c.items = withoutLine(c.items, productID)
	c.persistLocked()
	c.mu.Unlock()

	c.tasks.Go("cart remove sync", func(ctx context.Context) error {
		return c.client.RemoveOne(ctx, sessionID, productID)
	})
}

// UpdateQuantity sets the line's quantity. Anything below 1 is a removal,
// never a zero-quantity line.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	sessionID := c.sessionID()

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persistLocked()
	c.mu.Unlock()

	c.tasks.Go("cart update sync", func(ctx context.Context) error {
		return c.client.UpdateOne(ctx, sessionID, productID, quantity)
	})
}

// Clear empties the cart.
func (c *Cart) Clear() {
	sessionID := c.sessionID()

	c.mu.Lock()
	c.items = nil
	c.persistLocked()
	c.mu.Unlock()

	c.tasks.Go("cart clear sync", func(ctx context.Context) error {
		return c.client.ClearAll(ctx, sessionID)
	})
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []models.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]models.CartLine, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Count is the sum of quantities across all lines.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var count int
	for _, line := range c.items {
		count += line.Quantity
	}
	return count
}

// Total is the sum of price times quantity across all lines.
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var total float64
	for _, line := range c.items {
		total += line.Subtotal()
	}
	return total
}

// Flush waits for in-flight remote writes. Mutations never wait themselves.
func (c *Cart) Flush() {
	c.tasks.Flush()
}

func (c *Cart) sessionID() string {
	var user *models.User
	if c.users != nil {
		user = c.users.Current()
	}
	return c.sessions.Resolve(user)
}

func (c *Cart) persistLocked() {
	if err := c.mirror.Store(mirror.KeyCart, c.items); err != nil {
		log.Printf("Warning: failed to mirror cart: %v", err)
	}
}

func withoutLine(items []models.CartLine, productID int) []models.CartLine {
	kept := items[:0]
	for _, line := range items {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	return kept
}
