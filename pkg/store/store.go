// Package store implements the optimistic collection stores behind the
// storefront: cart, wishlist, compare and orders. Each store applies
// mutations to memory synchronously, writes the result to the local mirror,
// and fires a detached remote write it never waits on. Remote failures are
// logged and never rolled back; the next successful Load is the only
// reconciliation mechanism.
package store

import (
	"context"
	"log"
	"sync"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// UserSource is the slice of the auth store the collection stores read to
// resolve their session id. The read is a snapshot: a store may observe a
// stale user until its next operation.
type UserSource interface {
	Current() *models.User
}

// tasks tracks the detached remote writes a store has in flight. Mutations
// return before their write completes; Flush exists so shutdown paths and
// tests can wait for the stragglers.
type tasks struct {
	wg sync.WaitGroup
}

func (t *tasks) Go(name string, fn func(context.Context) error) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := fn(context.Background()); err != nil {
			log.Printf("Warning: %s failed: %v", name, err)
		}
	}()
}

func (t *tasks) Flush() {
	t.wg.Wait()
}
