package repository

import (
	"context"
	"database/sql"

	"github.com/vaultpass/passgen-go/internal/model"
)

// GenerationRepository persists generation events.
type GenerationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a new GenerationRepository.
func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Record inserts an event and sets the generated ID on it.
func (r *GenerationRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	query := `INSERT INTO generation_events (length, uppercase, lowercase, numbers, symbols, hashed)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		event.Length,
		event.Uppercase,
		event.Lowercase,
		event.Numbers,
		event.Symbols,
		event.Hashed,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// Stats aggregates all recorded events.
func (r *GenerationRepository) Stats(ctx context.Context) (model.GenerationStats, error) {
	query := `SELECT COUNT(*), COALESCE(AVG(length), 0), MAX(created_at) FROM generation_events`

	var (
		stats model.GenerationStats
		last  sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.AverageLength, &last); err != nil {
		return model.GenerationStats{}, err
	}

	if last.Valid {
		t := last.Time
		stats.LastGeneratedAt = &t
	}

	return stats, nil
}
