package diary

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
//
// Diary rows are append-only per item, so concurrent adds to the same slot
// never conflict at the row level. Primary keys on item IDs make retried
// inserts surface as unique violations rather than duplicates.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL diary repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// AddFoodItem appends an item to the slot.
func (r *PostgresRepository) AddFoodItem(ctx context.Context, userID string, date time.Time, mealType MealType, item *FoodItem) error {
	query := `
		INSERT INTO diary_food_items (id, user_id, date, meal_type, food_name, grams, calories, protein, fat, carbs, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		userID,
		date,
		string(mealType),
		item.FoodName,
		item.Grams,
		item.Calories,
		item.Protein,
		item.Fat,
		item.Carbs,
		item.CreatedAt,
	)
	return err
}

// RemoveFoodItem removes one item from the slot.
func (r *PostgresRepository) RemoveFoodItem(ctx context.Context, userID string, date time.Time, mealType MealType, itemID string) error {
	query := `
		DELETE FROM diary_food_items
		WHERE id = $1 AND user_id = $2 AND date = $3 AND meal_type = $4
	`

	result, err := r.pool.Exec(ctx, query, itemID, userID, date, string(mealType))
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrFoodItemNotFound
	}
	return nil
}

// MealsForDate retrieves all non-empty meals for one date in slot order.
func (r *PostgresRepository) MealsForDate(ctx context.Context, userID string, date time.Time) ([]*Meal, error) {
	grouped, err := r.MealsForRange(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}
	return grouped[DateKey(date)], nil
}

// MealsForRange retrieves meals for dates within [from, to], keyed by date.
func (r *PostgresRepository) MealsForRange(ctx context.Context, userID string, from, to time.Time) (map[string][]*Meal, error) {
	query := `
		SELECT date, meal_type, id, food_name, grams, calories, protein, fat, carbs, created_at
		FROM diary_food_items
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC,
			CASE meal_type
				WHEN 'breakfast' THEN 0
				WHEN 'morning_snack' THEN 1
				WHEN 'lunch' THEN 2
				WHEN 'afternoon_snack' THEN 3
				WHEN 'dinner' THEN 4
				ELSE 5
			END ASC,
			created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]*Meal)
	for rows.Next() {
		var (
			date     time.Time
			mealType string
			item     FoodItem
		)
		if err := rows.Scan(&date, &mealType, &item.ID, &item.FoodName, &item.Grams,
			&item.Calories, &item.Protein, &item.Fat, &item.Carbs, &item.CreatedAt); err != nil {
			return nil, err
		}

		key := DateKey(date)
		meals := result[key]
		// Rows arrive ordered, so the current slot is always the last meal.
		if len(meals) == 0 || meals[len(meals)-1].Type != MealType(mealType) {
			meals = append(meals, &Meal{Type: MealType(mealType), Date: date})
		}
		meal := meals[len(meals)-1]
		meal.Items = append(meal.Items, &item)
		result[key] = meals
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// AddActivity appends an activity to its date.
func (r *PostgresRepository) AddActivity(ctx context.Context, userID string, activity *Activity) error {
	query := `
		INSERT INTO diary_activities (id, user_id, date, activity_name, minutes, calories_burned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		activity.ID,
		userID,
		activity.Date,
		activity.ActivityName,
		activity.Minutes,
		activity.CaloriesBurned,
		activity.CreatedAt,
	)
	return err
}

// RemoveActivity removes one activity from its date.
func (r *PostgresRepository) RemoveActivity(ctx context.Context, userID string, date time.Time, activityID string) error {
	query := `
		DELETE FROM diary_activities
		WHERE id = $1 AND user_id = $2 AND date = $3
	`

	result, err := r.pool.Exec(ctx, query, activityID, userID, date)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// ActivitiesForDate retrieves all activities for one date, oldest first.
func (r *PostgresRepository) ActivitiesForDate(ctx context.Context, userID string, date time.Time) ([]*Activity, error) {
	grouped, err := r.ActivitiesForRange(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}
	return grouped[DateKey(date)], nil
}

// ActivitiesForRange retrieves activities for dates within [from, to].
func (r *PostgresRepository) ActivitiesForRange(ctx context.Context, userID string, from, to time.Time) (map[string][]*Activity, error) {
	query := `
		SELECT id, date, activity_name, minutes, calories_burned, created_at
		FROM diary_activities
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]*Activity)
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Date, &a.ActivityName, &a.Minutes, &a.CaloriesBurned, &a.CreatedAt); err != nil {
			return nil, err
		}
		key := DateKey(a.Date)
		result[key] = append(result[key], &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
