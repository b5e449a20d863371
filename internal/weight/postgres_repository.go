package weight

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL weight repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Add appends an entry to the user's series.
func (r *PostgresRepository) Add(ctx context.Context, entry *Entry) error {
	query := `
		INSERT INTO weight_entries (id, user_id, date, weight_kg, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.WeightKg,
		entry.Note,
		entry.CreatedAt,
	)
	return err
}

// List retrieves all entries for a user sorted by date, oldest first.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*Entry, error) {
	query := `
		SELECT id, user_id, date, weight_kg, note, created_at
		FROM weight_entries
		WHERE user_id = $1
		ORDER BY date ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListRange retrieves entries dated within [from, to], oldest first.
func (r *PostgresRepository) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*Entry, error) {
	query := `
		SELECT id, user_id, date, weight_kg, note, created_at
		FROM weight_entries
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Delete removes one entry from the user's series.
func (r *PostgresRepository) Delete(ctx context.Context, userID, entryID string) error {
	query := `DELETE FROM weight_entries WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, entryID, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// rowScanner matches the subset of pgx.Rows both list queries need.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows rowScanner) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.WeightKg, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
