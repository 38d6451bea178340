package redis

import (
	"context"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/sequence"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
)

type counterRepository struct {
	rdb *database.Redis
}

func NewCounterRepository(rdb *database.Redis) sequence.CounterRepository {
	return &counterRepository{rdb: rdb}
}

// Next uses INCR, which is atomic on the server side; concurrent
// callers on the same key each see a distinct value.
func (r *counterRepository) Next(ctx context.Context, key string) (int64, error) {
	value, err := r.rdb.Client.Incr(ctx, "seq:"+key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence counter: %w", err)
	}
	return value, nil
}
