package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
)

func newOrders(client *fakeOrdersClient, m mirror.Mirror) *Orders {
	return NewOrders(client, m, newResolver(), nil)
}

func TestCreateOrderComputesTotal(t *testing.T) {
	o := newOrders(&fakeOrdersClient{}, mirror.NewMemory())

	order := o.Create([]models.CartLine{
		{Product: testProduct(1, 100), Quantity: 2},
		{Product: testProduct(2, 50), Quantity: 1},
	}, nil, "")

	assert.InDelta(t, 250, order.Total, 1e-9)
}

func TestCreateOrderDefaults(t *testing.T) {
	o := newOrders(&fakeOrdersClient{}, mirror.NewMemory())

	order := o.Create([]models.CartLine{{Product: testProduct(1, 10), Quantity: 1}}, nil, "")

	assert.True(t, strings.HasPrefix(order.ID, "order_"))
	assert.Equal(t, "Processing", order.Status)
	assert.Equal(t, DefaultPaymentMethod, order.PaymentMethod)
	assert.Equal(t, "Guest", order.ShippingAddress.Name)
	assert.Equal(t, models.DeliveryEstimateOffset, order.EstimatedDelivery.Sub(order.CreatedAt))
	assert.WithinDuration(t, time.Now(), order.CreatedAt, 5*time.Second)
}

func TestCreateOrderPrependsToHistory(t *testing.T) {
	o := newOrders(&fakeOrdersClient{}, mirror.NewMemory())

	first := o.Create([]models.CartLine{{Product: testProduct(1, 10), Quantity: 1}}, nil, "")
	second := o.Create([]models.CartLine{{Product: testProduct(2, 20), Quantity: 1}}, nil, "")

	items := o.Items()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}

func TestCreateOrderSyncsRemotely(t *testing.T) {
	client := &fakeOrdersClient{}
	o := newOrders(client, mirror.NewMemory())

	order := o.Create([]models.CartLine{{Product: testProduct(1, 10), Quantity: 1}}, nil, "")
	o.Flush()

	created := client.Created()
	require.Len(t, created, 1)
	assert.Equal(t, order.ID, created[0].ID)
}

func TestCreateOrderKeepsExplicitAddressAndPayment(t *testing.T) {
	o := newOrders(&fakeOrdersClient{}, mirror.NewMemory())

	address := &models.ShippingAddress{Name: "Ada", Address: "1 Engine Way", City: "London", Country: "UK"}
	order := o.Create([]models.CartLine{{Product: testProduct(1, 10), Quantity: 1}}, address, "PayPal")

	assert.Equal(t, "Ada", order.ShippingAddress.Name)
	assert.Equal(t, "PayPal", order.PaymentMethod)
}

func TestOrdersLoadFailureFallsBackToMirror(t *testing.T) {
	m := mirror.NewMemory()
	require.NoError(t, m.Store(mirror.KeyOrders, []models.Order{
		{ID: "order_1", Total: 99.99, Status: "Processing"},
	}))

	client := &fakeOrdersClient{getErr: errors.New("connection refused")}
	o := newOrders(client, m)

	err := o.Load(context.Background())
	require.Error(t, err)

	items := o.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "order_1", items[0].ID)
}

func TestOrdersLoadReplacesState(t *testing.T) {
	client := &fakeOrdersClient{orders: []models.Order{
		{ID: "order_a"}, {ID: "order_b"},
	}}
	o := newOrders(client, mirror.NewMemory())

	require.NoError(t, o.Load(context.Background()))
	assert.Equal(t, 2, o.Count())
}
