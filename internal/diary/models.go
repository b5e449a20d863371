// Package diary provides the food and activity diary: per-slot meals, logged
// activities, the daily dashboard projection and period statistics.
package diary

import (
	"errors"
	"time"
)

// Repository errors.
var (
	ErrFoodItemNotFound = errors.New("food item not found")
	ErrActivityNotFound = errors.New("activity not found")

	// ErrConflict is surfaced by the storage layer when a concurrent write
	// collides on the same diary slot; it propagates unchanged.
	ErrConflict = errors.New("concurrent diary write conflict")
)

// MealType identifies one of the six fixed diary slots of a day.
type MealType string

// MealType values in display order.
const (
	MealBreakfast      MealType = "breakfast"
	MealMorningSnack   MealType = "morning_snack"
	MealLunch          MealType = "lunch"
	MealAfternoonSnack MealType = "afternoon_snack"
	MealDinner         MealType = "dinner"
	MealOther          MealType = "other"
)

// mealOrder fixes the display order of slots within a day.
var mealOrder = map[MealType]int{
	MealBreakfast:      0,
	MealMorningSnack:   1,
	MealLunch:          2,
	MealAfternoonSnack: 3,
	MealDinner:         4,
	MealOther:          5,
}

// ParseMealType parses a slot name, reporting whether it is one of the six
// known slots.
func ParseMealType(s string) (MealType, bool) {
	m := MealType(s)
	_, ok := mealOrder[m]
	return m, ok
}

// Order returns the slot's position within a day. Unknown slots sort last.
func (m MealType) Order() int {
	if o, ok := mealOrder[m]; ok {
		return o
	}
	return len(mealOrder)
}

// FoodItem is one logged diary line. The nutrient totals are computed once
// at write time from the reference entry and the quantity; reads never
// recompute them, so a later catalog change cannot rewrite history.
type FoodItem struct {
	ID        string
	FoodName  string
	Grams     float64
	Calories  int
	Protein   float64
	Fat       float64
	Carbs     float64
	CreatedAt time.Time
}

// Meal groups the items logged for one (date, slot). A meal exists exactly
// as long as it has items: it is created by the first item and removed with
// the last one.
type Meal struct {
	Type  MealType
	Date  time.Time
	Items []*FoodItem
}

// Totals sums the stored per-item values of the meal.
func (m *Meal) Totals() (calories int, protein, fat, carbs float64) {
	for _, item := range m.Items {
		calories += item.Calories
		protein += item.Protein
		fat += item.Fat
		carbs += item.Carbs
	}
	return calories, protein, fat, carbs
}

// Activity is one logged physical activity with its computed burn.
type Activity struct {
	ID             string
	ActivityName   string
	Date           time.Time
	Minutes        int
	CaloriesBurned int
	CreatedAt      time.Time
}

// DateKey formats a date as the canonical YYYY-MM-DD diary key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
