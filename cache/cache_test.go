package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "projects:all", []byte(`[]`), time.Minute))

	val, ok, err := m.Get(ctx, "projects:all")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), val)

	now = now.Add(time.Minute)
	_, ok, err = m.Get(ctx, "projects:all")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryCacheBounded(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryWithLimit(3)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "soon", []byte(`1`), time.Minute))
	require.NoError(t, m.Set(ctx, "later", []byte(`2`), time.Hour))
	require.NoError(t, m.Set(ctx, "forever", []byte(`3`), 0))
	require.NoError(t, m.Set(ctx, "new", []byte(`4`), time.Hour))
	assert.Equal(t, 3, m.Len())

	_, ok, err := m.Get(ctx, "soon")
	require.NoError(t, err)
	assert.False(t, ok)
	for _, key := range []string{"later", "forever", "new"} {
		_, ok, err := m.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok, key)
	}

	// Overwriting an existing key never evicts.
	require.NoError(t, m.Set(ctx, "later", []byte(`5`), time.Hour))
	assert.Equal(t, 3, m.Len())
}

func TestMemoryCacheSweepsExpiredWhenFull(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryWithLimit(2)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "a", []byte(`1`), time.Minute))
	require.NoError(t, m.Set(ctx, "b", []byte(`2`), time.Minute))
	now = now.Add(2 * time.Minute)

	require.NoError(t, m.Set(ctx, "c", []byte(`3`), time.Minute))
	assert.Equal(t, 1, m.Len())
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, m.Delete(ctx, "k"))

	_, ok, _ := m.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNoopNeverHits(t *testing.T) {
	ctx := context.Background()
	n := NewNoop()
	require.NoError(t, n.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, err := n.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyHashesParts(t *testing.T) {
	assert.Equal(t, "blogs:all", Key("blogs:all"))
	a := Key("blogs:slug", "hello-world")
	b := Key("blogs:slug", "hello-world")
	c := Key("blogs:slug", "other")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, len("blogs:slug:")+16)
}
