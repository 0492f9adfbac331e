package store

import (
	"errors"
	"log"
	"sync"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
)

// MaxCompareItems bounds the compare list.
const MaxCompareItems = 4

var (
	// ErrCompareFull is returned when the list already holds MaxCompareItems
	// entries. The message is user-facing.
	ErrCompareFull = errors.New("maximum 4 items allowed")
	// ErrAlreadyComparing is returned when the product is already listed.
	ErrAlreadyComparing = errors.New("product already in compare list")
)

// ToggleAction reports what Toggle did.
type ToggleAction string

const (
	ToggleAdded   ToggleAction = "added"
	ToggleRemoved ToggleAction = "removed"
)

// Compare holds the products under comparison. Unlike the other collections
// it lives only in the local mirror; nothing syncs to the backend.
type Compare struct {
	mu     sync.RWMutex
	items  []models.Product
	mirror mirror.Mirror
}

// NewCompare hydrates the list from the mirror.
func NewCompare(m mirror.Mirror) *Compare {
	c := &Compare{mirror: m}
	var saved []models.Product
	if m.Load(mirror.KeyCompare, &saved) {
		c.items = saved
	}
	return c
}

// Add appends the product. A full list or a duplicate is rejected with a
// user-facing error and no mutation takes place in either case.
func (c *Compare) Add(product models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= MaxCompareItems {
		return ErrCompareFull
	}
	for _, item := range c.items {
		if item.ID == product.ID {
			return ErrAlreadyComparing
		}
	}
	c.items = append(c.items, product)
	c.persistLocked()
	return nil
}

// Remove drops the product from the list.
func (c *Compare) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persistLocked()
}

// Toggle removes the product when present, otherwise attempts an add. The
// returned action says which happened; the error carries Add's rejections.
func (c *Compare) Toggle(product models.Product) (ToggleAction, error) {
	if c.Contains(product.ID) {
		c.Remove(product.ID)
		return ToggleRemoved, nil
	}
	if err := c.Add(product); err != nil {
		return "", err
	}
	return ToggleAdded, nil
}

// Clear empties the list.
func (c *Compare) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persistLocked()
}

func (c *Compare) Contains(productID int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the current list.
func (c *Compare) Items() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]models.Product, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Compare) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Compare) persistLocked() {
	if err := c.mirror.Store(mirror.KeyCompare, c.items); err != nil {
		log.Printf("Warning: failed to mirror compare list: %v", err)
	}
}
