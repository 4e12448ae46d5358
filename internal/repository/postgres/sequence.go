package postgres

import (
	"context"
	"database/sql"

	"association-admin-backend/internal/repository"
)

type sequenceRepository struct {
	db *sql.DB
}

func NewSequenceRepository(db *sql.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next increments and returns the per-year counter in a single statement, so
// concurrent callers always draw distinct values.
func (r *sequenceRepository) Next(ctx context.Context, kind string, year int) (int64, error) {
	query := `INSERT INTO code_sequences (kind, year, value) VALUES ($1, $2, 1)
	          ON CONFLICT (kind, year) DO UPDATE SET value = code_sequences.value + 1
	          RETURNING value`
	var value int64
	err := r.db.QueryRowContext(ctx, query, kind, year).Scan(&value)
	return value, err
}
