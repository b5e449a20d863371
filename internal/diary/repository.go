package diary

import (
	"context"
	"time"
)

// Repository defines the interface for diary persistence.
//
// A (user, date, mealType) triple identifies one slot. Implementations must
// guarantee that concurrent appends to the same slot never drop an item:
// items carry unique identities, so appends are conflict-free, and a
// detected collision on the same slot surfaces as ErrConflict rather than a
// silent overwrite.
type Repository interface {
	// AddFoodItem appends an item to the slot, creating the meal if it is
	// the slot's first item.
	AddFoodItem(ctx context.Context, userID string, date time.Time, mealType MealType, item *FoodItem) error

	// RemoveFoodItem removes one item from the slot. The meal disappears
	// with its last item. Returns ErrFoodItemNotFound if the item doesn't
	// exist in that slot for that user.
	RemoveFoodItem(ctx context.Context, userID string, date time.Time, mealType MealType, itemID string) error

	// MealsForDate retrieves all non-empty meals for one date in slot order.
	MealsForDate(ctx context.Context, userID string, date time.Time) ([]*Meal, error)

	// MealsForRange retrieves meals for dates within [from, to], keyed by
	// the YYYY-MM-DD date key. Dates without meals are absent.
	MealsForRange(ctx context.Context, userID string, from, to time.Time) (map[string][]*Meal, error)

	// AddActivity appends an activity to its date.
	AddActivity(ctx context.Context, userID string, activity *Activity) error

	// RemoveActivity removes one activity. Returns ErrActivityNotFound if
	// the activity doesn't exist on that date for that user.
	RemoveActivity(ctx context.Context, userID string, date time.Time, activityID string) error

	// ActivitiesForDate retrieves all activities for one date, oldest first.
	ActivitiesForDate(ctx context.Context, userID string, date time.Time) ([]*Activity, error)

	// ActivitiesForRange retrieves activities for dates within [from, to],
	// keyed by the YYYY-MM-DD date key. Dates without activities are absent.
	ActivitiesForRange(ctx context.Context, userID string, from, to time.Time) (map[string][]*Activity, error)
}
