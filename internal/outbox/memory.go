// internal/outbox/memory.go
//
// In-memory implementation of the outbox Store interface.
// Used when no outbox database is configured.
//
// Characteristics:
//   - Stores deliveries keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package outbox

import (
	"context"
	"sort"
	"sync"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu         sync.RWMutex        // guards deliveries map
	deliveries map[string]Delivery // keyed by Delivery.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{deliveries: make(map[string]Delivery)}
}

// Save adds or replaces the delivery in the map.
func (m *memory) Save(ctx context.Context, d Delivery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deliveries[d.ID] = d
	return nil
}

// Get looks up a delivery by ID.
func (m *memory) Get(ctx context.Context, id string) (Delivery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.deliveries[id]; ok {
		return d, nil
	}
	return Delivery{}, ErrNotFound
}

// Failed returns failed deliveries ordered by creation time.
func (m *memory) Failed(ctx context.Context) ([]Delivery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Delivery
	for _, d := range m.deliveries {
		if d.Status == StatusFailed {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memory) Close() error { return nil }
