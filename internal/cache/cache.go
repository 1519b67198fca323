package cache

import (
	"context"
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64
}

// Cache es un caché en memoria con expiración por clave
type Cache[V any] struct {
	items map[string]item[V]
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
}

// New crea un caché con el TTL por defecto
func New[V any](defaultTTL time.Duration) *Cache[V] {
	return &Cache[V]{
		items: make(map[string]item[V]),
		ttl:   defaultTTL,
		now:   time.Now,
	}
}

// Set guarda un valor en caché
func (c *Cache[V]) Set(key string, value V, ttl ...time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	duration := c.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}

	c.items[key] = item[V]{
		value:      value,
		expiration: c.now().Add(duration).UnixNano(),
	}
}

// GetValue obtiene un valor del caché
func (c *Cache[V]) GetValue(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	it, found := c.items[key]
	if !found {
		return zero, false
	}

	// Verificar si expiró
	if c.now().UnixNano() > it.expiration {
		return zero, false
	}

	return it.value, true
}

// Size retorna el número de items en caché
func (c *Cache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// RemoveExpired elimina los items expirados y retorna cuántos se eliminaron
func (c *Cache[V]) RemoveExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := c.now().UnixNano()
	for key, it := range c.items {
		if now > it.expiration {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

// StartCleanup limpia items expirados periódicamente hasta que ctx termine
func (c *Cache[V]) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.RemoveExpired()
			}
		}
	}()
}
