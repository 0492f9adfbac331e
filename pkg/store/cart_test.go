package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
)

func newCart(client *fakeCartClient, m mirror.Mirror) *Cart {
	return NewCart(client, m, newResolver(), nil)
}

func TestCartAddSingleProduct(t *testing.T) {
	cart := newCart(&fakeCartClient{}, mirror.NewMemory())

	p := testProduct(1, 189.99)
	cart.Add(p)

	assert.Equal(t, 1, cart.Count())
	assert.InDelta(t, 189.99, cart.Total(), 1e-9)
}

func TestCartAddSameProductIncrementsQuantity(t *testing.T) {
	cart := newCart(&fakeCartClient{}, mirror.NewMemory())

	p := testProduct(1, 10)
	cart.Add(p)
	cart.Add(p)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.Count())
	assert.InDelta(t, 20, cart.Total(), 1e-9)
}

func TestCartUpdateQuantityToZeroRemovesLine(t *testing.T) {
	client := &fakeCartClient{}
	cart := newCart(client, mirror.NewMemory())

	p := testProduct(1, 10)
	cart.Add(p)
	cart.UpdateQuantity(p.ID, 0)

	assert.Empty(t, cart.Items())

	// The remote side sees a delete, not a zero-quantity update.
	cart.Flush()
	assert.Contains(t, client.Calls(), "remove 1")
	assert.NotContains(t, client.Calls(), "update 1 x0")
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := newCart(&fakeCartClient{}, mirror.NewMemory())

	p := testProduct(3, 25)
	cart.Add(p)
	cart.UpdateQuantity(p.ID, 4)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.InDelta(t, 100, cart.Total(), 1e-9)
}

func TestCartClear(t *testing.T) {
	client := &fakeCartClient{}
	cart := newCart(client, mirror.NewMemory())

	cart.Add(testProduct(1, 10))
	cart.Add(testProduct(2, 20))
	cart.Clear()

	assert.Zero(t, cart.Count())
	cart.Flush()
	assert.Contains(t, client.Calls(), "clear")
}

func TestCartLoadReplacesStateWithServerView(t *testing.T) {
	client := &fakeCartClient{lines: []models.CartLine{
		{Product: testProduct(5, 50), Quantity: 2},
	}}
	m := mirror.NewMemory()
	cart := newCart(client, m)

	cart.Add(testProduct(1, 10))
	require.NoError(t, cart.Load(context.Background()))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].ID)
	assert.False(t, cart.Loading())

	// The mirror now holds the server's view too.
	var mirrored []models.CartLine
	require.True(t, m.Load(mirror.KeyCart, &mirrored))
	require.Len(t, mirrored, 1)
	assert.Equal(t, 5, mirrored[0].ID)
}

func TestCartLoadFailureFallsBackToMirror(t *testing.T) {
	m := mirror.NewMemory()
	require.NoError(t, m.Store(mirror.KeyCart, []models.CartLine{
		{Product: testProduct(7, 35), Quantity: 1},
	}))

	client := &fakeCartClient{getErr: errors.New("connection refused")}
	cart := newCart(client, m)

	err := cart.Load(context.Background())
	require.Error(t, err)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].ID)
	assert.False(t, cart.Loading())
}

func TestCartMutationSurvivesRemoteFailure(t *testing.T) {
	client := &fakeCartClient{callErr: errors.New("write failed")}
	cart := newCart(client, mirror.NewMemory())

	cart.Add(testProduct(1, 10))
	cart.Flush()

	// No rollback: the optimistic state stays.
	assert.Equal(t, 1, cart.Count())
}

func TestCartMirrorsEveryMutation(t *testing.T) {
	m := mirror.NewMemory()
	cart := newCart(&fakeCartClient{}, m)

	cart.Add(testProduct(1, 10))

	var mirrored []models.CartLine
	require.True(t, m.Load(mirror.KeyCart, &mirrored))
	require.Len(t, mirrored, 1)
	assert.Equal(t, 1, mirrored[0].Quantity)
}
