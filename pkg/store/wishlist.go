package store

import (
	"context"
	"log"
	"sync"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
	"github.com/mayank-0789/azclone-1/pkg/session"
)

// WishlistClient is what the wishlist store needs from the remote side.
type WishlistClient interface {
	GetAll(ctx context.Context, sessionID string) ([]models.WishlistEntry, error)
	AddOne(ctx context.Context, sessionID string, productID int) error
	RemoveOne(ctx context.Context, sessionID string, productID int) error
}

// Wishlist holds the session's saved products, unique by product id.
type Wishlist struct {
	mu      sync.RWMutex
	items   []models.WishlistEntry
	loading bool

	client   WishlistClient
	mirror   mirror.Mirror
	sessions *session.Resolver
	users    UserSource
	tasks    tasks
}

func NewWishlist(client WishlistClient, m mirror.Mirror, sessions *session.Resolver, users UserSource) *Wishlist {
	return &Wishlist{client: client, mirror: m, sessions: sessions, users: users}
}

// Load replaces the wishlist with the server's view, falling back to the
// mirror on failure.
func (w *Wishlist) Load(ctx context.Context) error {
	sessionID := w.sessionID()

	w.mu.Lock()
	w.loading = true
	w.mu.Unlock()

	entries, err := w.client.GetAll(ctx, sessionID)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false
	if err != nil {
		var saved []models.WishlistEntry
		if w.mirror.Load(mirror.KeyWishlist, &saved) {
			w.items = saved
		}
		return err
	}
	w.items = entries
	w.persistLocked()
	return nil
}

// Add saves the product. Duplicates are a local no-op and fire no remote
// write.
func (w *Wishlist) Add(product models.Product) {
	sessionID := w.sessionID()

	w.mu.Lock()
	for _, entry := range w.items {
		if entry.ID == product.ID {
			w.mu.Unlock()
			return
		}
	}
	w.items = append(w.items, models.WishlistEntry{Product: product})
	w.persistLocked()
	w.mu.Unlock()

	w.tasks.Go("wishlist add sync", func(ctx context.Context) error {
		return w.client.AddOne(ctx, sessionID, product.ID)
	})
}

// Remove drops the product from the wishlist.
func (w *Wishlist) Remove(productID int) {
	sessionID := w.sessionID()

	w.mu.Lock()
	kept := w.items[:0]
	for _, entry := range w.items {
		if entry.ID != productID {
			kept = append(kept, entry)
		}
	}
	w.items = kept
	w.persistLocked()
	w.mu.Unlock()

	w.tasks.Go("wishlist remove sync", func(ctx context.Context) error {
		return w.client.RemoveOne(ctx, sessionID, productID)
	})
}

// Toggle removes the product when present, otherwise adds it.
func (w *Wishlist) Toggle(product models.Product) {
	if w.Contains(product.ID) {
		w.Remove(product.ID)
		return
	}
	w.Add(product)
}

func (w *Wishlist) Contains(productID int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, entry := range w.items {
		if entry.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the current entries.
func (w *Wishlist) Items() []models.WishlistEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	items := make([]models.WishlistEntry, len(w.items))
	copy(items, w.items)
	return items
}

func (w *Wishlist) Loading() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loading
}

// Count is the number of distinct saved products.
func (w *Wishlist) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

// Flush waits for in-flight remote writes.
func (w *Wishlist) Flush() {
	w.tasks.Flush()
}

func (w *Wishlist) sessionID() string {
	var user *models.User
	if w.users != nil {
		user = w.users.Current()
	}
	return w.sessions.Resolve(user)
}

func (w *Wishlist) persistLocked() {
	if err := w.mirror.Store(mirror.KeyWishlist, w.items); err != nil {
		log.Printf("Warning: failed to mirror wishlist: %v", err)
	}
}
