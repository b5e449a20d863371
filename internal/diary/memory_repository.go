package diary

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository is an in-memory implementation of Repository.
type InMemoryRepository struct {
	mu sync.RWMutex
	// meals: userID -> dateKey -> mealType -> items
	meals map[string]map[string]map[MealType][]*FoodItem
	// activities: userID -> dateKey -> entries
	activities map[string]map[string][]*Activity
}

// NewInMemoryRepository creates a new in-memory diary repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		meals:      make(map[string]map[string]map[MealType][]*FoodItem),
		activities: make(map[string]map[string][]*Activity),
	}
}

// AddFoodItem appends an item to the slot, creating the meal if needed.
func (r *InMemoryRepository) AddFoodItem(_ context.Context, userID string, date time.Time, mealType MealType, item *FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.meals[userID] == nil {
		r.meals[userID] = make(map[string]map[MealType][]*FoodItem)
	}
	key := DateKey(date)
	if r.meals[userID][key] == nil {
		r.meals[userID][key] = make(map[MealType][]*FoodItem)
	}

	copied := *item
	r.meals[userID][key][mealType] = append(r.meals[userID][key][mealType], &copied)
	return nil
}

// RemoveFoodItem removes one item from the slot, dropping the meal with its
// last item.
func (r *InMemoryRepository) RemoveFoodItem(_ context.Context, userID string, date time.Time, mealType MealType, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := DateKey(date)
	items := r.meals[userID][key][mealType]
	for i, item := range items {
		if item.ID != itemID {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if len(items) == 0 {
			delete(r.meals[userID][key], mealType)
			if len(r.meals[userID][key]) == 0 {
				delete(r.meals[userID], key)
			}
		} else {
			r.meals[userID][key][mealType] = items
		}
		return nil
	}
	return ErrFoodItemNotFound
}

// MealsForDate retrieves all non-empty meals for one date in slot order.
func (r *InMemoryRepository) MealsForDate(_ context.Context, userID string, date time.Time) ([]*Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.mealsAt(userID, DateKey(date), date), nil
}

// MealsForRange retrieves meals for dates within [from, to], keyed by date.
func (r *InMemoryRepository) MealsForRange(_ context.Context, userID string, from, to time.Time) (map[string][]*Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]*Meal)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := DateKey(day)
		if meals := r.mealsAt(userID, key, day); len(meals) > 0 {
			result[key] = meals
		}
	}
	return result, nil
}

// mealsAt builds sorted meal copies for one date. Callers hold the lock.
func (r *InMemoryRepository) mealsAt(userID, key string, date time.Time) []*Meal {
	slots := r.meals[userID][key]
	if len(slots) == 0 {
		return nil
	}

	meals := make([]*Meal, 0, len(slots))
	for mealType, items := range slots {
		meal := &Meal{Type: mealType, Date: date, Items: make([]*FoodItem, 0, len(items))}
		for _, item := range items {
			copied := *item
			meal.Items = append(meal.Items, &copied)
		}
		meals = append(meals, meal)
	}
	sort.Slice(meals, func(i, j int) bool {
		return meals[i].Type.Order() < meals[j].Type.Order()
	})
	return meals
}

// AddActivity appends an activity to its date.
func (r *InMemoryRepository) AddActivity(_ context.Context, userID string, activity *Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activities[userID] == nil {
		r.activities[userID] = make(map[string][]*Activity)
	}
	key := DateKey(activity.Date)

	copied := *activity
	r.activities[userID][key] = append(r.activities[userID][key], &copied)
	return nil
}

// RemoveActivity removes one activity from its date.
func (r *InMemoryRepository) RemoveActivity(_ context.Context, userID string, date time.Time, activityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := DateKey(date)
	entries := r.activities[userID][key]
	for i, a := range entries {
		if a.ID != activityID {
			continue
		}
		entries = append(entries[:i], entries[i+1:]...)
		if len(entries) == 0 {
			delete(r.activities[userID], key)
		} else {
			r.activities[userID][key] = entries
		}
		return nil
	}
	return ErrActivityNotFound
}

// ActivitiesForDate retrieves all activities for one date, oldest first.
func (r *InMemoryRepository) ActivitiesForDate(_ context.Context, userID string, date time.Time) ([]*Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.activitiesAt(userID, DateKey(date)), nil
}

// ActivitiesForRange retrieves activities for dates within [from, to].
func (r *InMemoryRepository) ActivitiesForRange(_ context.Context, userID string, from, to time.Time) (map[string][]*Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]*Activity)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := DateKey(day)
		if entries := r.activitiesAt(userID, key); len(entries) > 0 {
			result[key] = entries
		}
	}
	return result, nil
}

// activitiesAt builds sorted activity copies for one date. Callers hold the
// lock.
func (r *InMemoryRepository) activitiesAt(userID, key string) []*Activity {
	entries := r.activities[userID][key]
	if len(entries) == 0 {
		return nil
	}

	copies := make([]*Activity, 0, len(entries))
	for _, a := range entries {
		copied := *a
		copies = append(copies, &copied)
	}
	sort.Slice(copies, func(i, j int) bool {
		return copies[i].CreatedAt.Before(copies[j].CreatedAt)
	})
	return copies
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
