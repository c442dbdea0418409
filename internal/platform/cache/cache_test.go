package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLListCache_HitWithinTTL(t *testing.T) {
	c := New[string](5 * time.Minute)
	c.Set("loads:list:p1", []string{"a", "b"}, 42)

	items, total, ok := c.Get("loads:list:p1")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Equal(t, int64(42), total)
}

func TestTTLListCache_MissAfterExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c := New(time.Minute, WithClock[string](func() time.Time { return now }))
	c.Set("k", []string{"a"}, 1)

	now = now.Add(61 * time.Second)
	_, _, ok := c.Get("k")
	assert.False(t, ok)

	// the expired entry is gone, not just hidden
	c.mu.RLock()
	_, present := c.entries["k"]
	c.mu.RUnlock()
	assert.False(t, present)
}

func TestTTLListCache_InvalidateDropsEverything(t *testing.T) {
	c := New[int](time.Minute)
	c.Set("a", []int{1}, 1)
	c.Set("b", []int{2}, 1)

	c.Invalidate()

	_, _, ok := c.Get("a")
	assert.False(t, ok)
	_, _, ok = c.Get("b")
	assert.False(t, ok)
}

func TestTTLListCache_SetEvictsExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c := New(time.Minute, WithClock[int](func() time.Time { return now }))
	c.Set("old", []int{1}, 1)

	now = now.Add(2 * time.Minute)
	c.Set("new", []int{2}, 1)

	c.mu.RLock()
	_, present := c.entries["old"]
	c.mu.RUnlock()
	assert.False(t, present)
}
