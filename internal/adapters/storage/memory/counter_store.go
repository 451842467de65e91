// Package memory disponibiliza os stores em memória do processo: contadores
// de janela fixa e cache com TTL.
package memory

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int64
	resetAt time.Time
}

// CounterStore implementa ports.CounterStorage com um mapa protegido por
// mutex. Incremento e comparação são um único passo atômico por chave: duas
// chamadas concorrentes nunca observam o mesmo contador.
type CounterStore struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

func NewCounterStore() *CounterStore {
	return &CounterStore{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (s *CounterStore) Increment(_ context.Context, key string, windowLen time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(windowLen)}
		s.windows[key] = w
	}

	w.count++
	return w.count, w.resetAt, nil
}

// Sweep remove janelas já expiradas. Só limita memória: uma janela expirada
// que ainda não foi varrida é resetada pelo próprio Increment.
func (s *CounterStore) Sweep(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
		}
	}
	return nil
}
