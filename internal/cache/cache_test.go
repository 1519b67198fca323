package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestCache(ttl time.Duration) (*Cache[string], *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := New[string](ttl)
	c.now = clock.now
	return c, clock
}

func TestCache_SetAndExpire(t *testing.T) {
	c, clock := newTestCache(time.Minute)

	c.Set("a", "1")
	c.Set("b", "2", 10*time.Minute)

	v, ok := c.GetValue("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	clock.t = clock.t.Add(2 * time.Minute)

	_, ok = c.GetValue("a")
	assert.False(t, ok, "a should be expired")
	v, ok = c.GetValue("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, 1, c.RemoveExpired())
	assert.Equal(t, 1, c.Size())
}

func TestCache_StartCleanup(t *testing.T) {
	c := New[int](time.Nanosecond)
	c.Set("x", 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.StartCleanup(ctx, time.Millisecond)

	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
}
