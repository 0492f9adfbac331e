package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
	"github.com/mayank-0789/azclone-1/pkg/session"
)

func testProduct(id int, price float64) models.Product {
	return models.Product{
		ID:      id,
		Title:   fmt.Sprintf("Product %d", id),
		Price:   price,
		Rating:  4.5,
		InStock: true,
	}
}

func newResolver() *session.Resolver {
	return session.NewResolver(mirror.NewMemory())
}

// fakeCartClient records remote calls and fails on demand.
type fakeCartClient struct {
	mu      sync.Mutex
	lines   []models.CartLine
	getErr  error
	callErr error
	calls   []string
}

func (f *fakeCartClient) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.callErr
}

func (f *fakeCartClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]string, len(f.calls))
	copy(calls, f.calls)
	return calls
}

func (f *fakeCartClient) GetAll(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.lines, nil
}

func (f *fakeCartClient) AddOne(ctx context.Context, sessionID string, productID, quantity int) error {
	return f.record(fmt.Sprintf("add %d x%d", productID, quantity))
}

func (f *fakeCartClient) RemoveOne(ctx context.Context, sessionID string, productID int) error {
	return f.record(fmt.Sprintf("remove %d", productID))
}

func (f *fakeCartClient) UpdateOne(ctx context.Context, sessionID string, productID, quantity int) error {
	return f.record(fmt.Sprintf("update %d x%d", productID, quantity))
}

func (f *fakeCartClient) ClearAll(ctx context.Context, sessionID string) error {
	return f.record("clear")
}

// fakeWishlistClient mirrors fakeCartClient for the wishlist interface.
type fakeWishlistClient struct {
	mu      sync.Mutex
	entries []models.WishlistEntry
	getErr  error
	calls   []string
}

func (f *fakeWishlistClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeWishlistClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]string, len(f.calls))
	copy(calls, f.calls)
	return calls
}

func (f *fakeWishlistClient) GetAll(ctx context.Context, sessionID string) ([]models.WishlistEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries, nil
}

func (f *fakeWishlistClient) AddOne(ctx context.Context, sessionID string, productID int) error {
	f.record(fmt.Sprintf("add %d", productID))
	return nil
}

func (f *fakeWishlistClient) RemoveOne(ctx context.Context, sessionID string, productID int) error {
	f.record(fmt.Sprintf("remove %d", productID))
	return nil
}

// fakeOrdersClient records created orders.
type fakeOrdersClient struct {
	mu      sync.Mutex
	orders  []models.Order
	getErr  error
	created []models.Order
}

func (f *fakeOrdersClient) GetAll(ctx context.Context, sessionID string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.orders, nil
}

func (f *fakeOrdersClient) Create(ctx context.Context, order models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrdersClient) Created() []models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	created := make([]models.Order, len(f.created))
	copy(created, f.created)
	return created
}
