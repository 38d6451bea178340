package memory

import (
	"context"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/sequence"
)

type counterRepository struct {
	store *Store
}

func NewCounterRepository(store *Store) sequence.CounterRepository {
	return &counterRepository{store: store}
}

// Next increments and reads back under the store lock; concurrent
// callers on the same key always observe distinct values.
func (r *counterRepository) Next(ctx context.Context, key string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.counters[key]++
	return r.store.counters[key], nil
}
