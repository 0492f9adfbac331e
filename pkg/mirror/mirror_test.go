package mirror

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Store(KeyCart, []int{1, 2, 3}))

	var got []int
	require.True(t, m.Load(KeyCart, &got))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMemoryMissingKey(t *testing.T) {
	m := NewMemory()

	var got string
	assert.False(t, m.Load(KeySessionID, &got))
}

func TestMemoryRemove(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Store(KeyUser, "someone"))
	require.NoError(t, m.Remove(KeyUser))

	var got string
	assert.False(t, m.Load(KeyUser, &got))
}

func TestFileRoundTrip(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, f.Store(KeyWishlist, map[string]int{"saved": 7}))

	var got map[string]int
	require.True(t, f.Load(KeyWishlist, &got))
	assert.Equal(t, 7, got["saved"])
}

func TestFileCorruptBlobReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyCart+".json"), []byte("{not json"), 0o644))

	var got []int
	assert.False(t, f.Load(KeyCart, &got))
}

func TestFileRemoveIsIdempotent(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, f.Remove(KeyOrders))
	require.NoError(t, f.Store(KeyOrders, "x"))
	assert.NoError(t, f.Remove(KeyOrders))
	assert.NoError(t, f.Remove(KeyOrders))
}

func TestFileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	f, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f.Store(KeySessionID, "guest_123_abc"))

	reopened, err := NewFile(dir)
	require.NoError(t, err)

	var got string
	require.True(t, reopened.Load(KeySessionID, &got))
	assert.Equal(t, "guest_123_abc", got)
}
