package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL profile repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get retrieves the profile for a user.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	query := `
		SELECT
			user_id, name, age, gender, height_cm, weight_kg,
			goal, activity_level, diet_style, weight_change_rate,
			created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var p Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.Name,
		&p.Age,
		&p.Gender,
		&p.HeightCm,
		&p.WeightKg,
		&p.Goal,
		&p.ActivityLevel,
		&p.DietStyle,
		&p.WeightChangeRate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &p, nil
}

// Upsert creates or replaces the profile for a user.
func (r *PostgresRepository) Upsert(ctx context.Context, profile *Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, name, age, gender, height_cm, weight_kg,
			goal, activity_level, diet_style, weight_change_rate,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			gender = EXCLUDED.gender,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			goal = EXCLUDED.goal,
			activity_level = EXCLUDED.activity_level,
			diet_style = EXCLUDED.diet_style,
			weight_change_rate = EXCLUDED.weight_change_rate,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Age,
		profile.Gender,
		profile.HeightCm,
		profile.WeightKg,
		profile.Goal,
		profile.ActivityLevel,
		profile.DietStyle,
		profile.WeightChangeRate,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

// Delete removes the profile for a user.
func (r *PostgresRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM profiles WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
