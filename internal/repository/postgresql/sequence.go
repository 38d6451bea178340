package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/sequence"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
)

type counterRepository struct {
	db *database.DB
}

func NewCounterRepository(db *database.DB) sequence.CounterRepository {
	return &counterRepository{db: db}
}

// Next is a single upsert-increment statement; the database serializes
// concurrent calls on the same key, so no two callers read back the
// same value. Never split into read-then-write.
func (r *counterRepository) Next(ctx context.Context, key string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sequence_counters (key, value)
		VALUES ($1, 1)
		ON CONFLICT (key)
		DO UPDATE SET value = sequence_counters.value + 1, updated_at = NOW()
		RETURNING value
	`

	var value int64
	if err := q.QueryRow(ctx, query, key).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance sequence counter: %w", err)
	}

	return value, nil
}
