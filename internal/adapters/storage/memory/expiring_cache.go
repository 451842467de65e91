package memory

import (
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value     V
	createdAt time.Time
}

// ExpiringCache é um cache chave→valor com TTL único para todas as entradas.
// Entradas vencidas são invisíveis ao Get mesmo antes de um Sweep remover o
// registro físico.
type ExpiringCache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry[V]
	now     func() time.Time
}

func NewExpiringCache[V any](ttl time.Duration) *ExpiringCache[V] {
	return &ExpiringCache[V]{
		ttl:     ttl,
		entries: make(map[string]cacheEntry[V]),
		now:     time.Now,
	}
}

func (c *ExpiringCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().Sub(entry.createdAt) > c.ttl {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Put cria ou sobrescreve a entrada, reiniciando o TTL.
func (c *ExpiringCache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry[V]{value: value, createdAt: c.now()}
}

// Sweep remove fisicamente as entradas vencidas.
func (c *ExpiringCache[V]) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if now.Sub(entry.createdAt) > c.ttl {
			delete(c.entries, key)
		}
	}
}

// Len devolve o total de entradas físicas, inclusive as vencidas que ainda
// não foram varridas.
func (c *ExpiringCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
