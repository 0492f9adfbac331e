package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
	"github.com/mayank-0789/azclone-1/pkg/session"
)

// OrdersClient is what the order store needs from the remote side.
type OrdersClient interface {
	GetAll(ctx context.Context, sessionID string) ([]models.Order, error)
	Create(ctx context.Context, order models.Order) error
}

// DefaultPaymentMethod is used when checkout supplies none.
const DefaultPaymentMethod = "Credit Card ending in 1234"

// Orders holds the session's order history, newest first. Orders are
// immutable once created.
type Orders struct {
	mu      sync.RWMutex
	items   []models.Order
	loading bool

	client   OrdersClient
	mirror   mirror.Mirror
	sessions *session.Resolver
	users    UserSource
	tasks    tasks
}

func NewOrders(client OrdersClient, m mirror.Mirror, sessions *session.Resolver, users UserSource) *Orders {
	return &Orders{client: client, mirror: m, sessions: sessions, users: users}
}

// Load replaces the history with the server's view, falling back to the
// mirror on failure.
func (o *Orders) Load(ctx context.Context) error {
	sessionID := o.sessionID()

	o.mu.Lock()
	o.loading = true
	o.mu.Unlock()

	orders, err := o.client.GetAll(ctx, sessionID)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.loading = false
	if err != nil {
		var saved []models.Order
		if o.mirror.Load(mirror.KeyOrders, &saved) {
			o.items = saved
		}
		return err
	}
	o.items = orders
	o.persistLocked()
	return nil
}

// Create builds an order from the line items, prepends it to the history and
// fires the remote create. The order the caller gets back is final: the
// server never assigns a different id. A nil address and empty payment
// method fall back to defaults.
func (o *Orders) Create(items []models.CartLine, address *models.ShippingAddress, paymentMethod string) models.Order {
	sessionID := o.sessionID()

	now := time.Now().UTC()
	order := models.Order{
		ID:                models.GenerateOrderID(),
		SessionID:         sessionID,
		Items:             items,
		Total:             models.OrderTotal(items),
		Status:            "Processing",
		ShippingAddress:   o.shippingAddress(address),
		PaymentMethod:     paymentMethod,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(models.DeliveryEstimateOffset),
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = DefaultPaymentMethod
	}

	o.mu.Lock()
	o.items = append([]models.Order{order}, o.items...)
	o.persistLocked()
	o.mu.Unlock()

	o.tasks.Go("order create sync", func(ctx context.Context) error {
		return o.client.Create(ctx, order)
	})
	return order
}

// Items returns a copy of the history, newest first.
func (o *Orders) Items() []models.Order {
	o.mu.RLock()
	defer o.mu.RUnlock()
	items := make([]models.Order, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Orders) Loading() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.loading
}

func (o *Orders) Count() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.items)
}

// Flush waits for in-flight remote writes.
func (o *Orders) Flush() {
	o.tasks.Flush()
}

func (o *Orders) shippingAddress(address *models.ShippingAddress) models.ShippingAddress {
	if address != nil {
		return *address
	}
	name := "Guest"
	if o.users != nil {
		if user := o.users.Current(); user != nil {
			name = user.Name
		}
	}
	return models.ShippingAddress{
		Name:    name,
		Address: "123 Main St",
		City:    "New York",
		State:   "NY",
		Zip:     "10001",
		Country: "United States",
	}
}

func (o *Orders) sessionID() string {
	var user *models.User
	if o.users != nil {
		user = o.users.Current()
	}
	return o.sessions.Resolve(user)
}

func (o *Orders) persistLocked() {
	if err := o.mirror.Store(mirror.KeyOrders, o.items); err != nil {
		log.Printf("Warning: failed to mirror orders: %v", err)
	}
}
