package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_SetGet(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	c.Set("a", 42)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

// Süresi dolan entry okunamamalı — fiziksel silme beklenmeden.
func TestTTLCache_Expiry(t *testing.T) {
	c := New[string, string](10*time.Millisecond, time.Hour)
	defer c.Close()

	c.Set("k", "v")
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestTTLCache_DeleteAndClear(t *testing.T) {
	c := New[string, int](time.Minute, time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestTTLCache_EvictExpired(t *testing.T) {
	c := New[string, int](10*time.Millisecond, time.Hour)
	defer c.Close()

	c.Set("a", 1)
	time.Sleep(30 * time.Millisecond)

	// Get silmez, Len hâlâ 1 — fiziksel silme evictExpired'ın işi
	assert.Equal(t, 1, c.Len())
	c.evictExpired()
	assert.Equal(t, 0, c.Len())
}
