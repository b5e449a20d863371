// Package reference exposes the immutable food and activity catalogs the
// diary resolves names against. Both catalogs are compiled into the binary,
// loaded once and shared read-only across all users.
package reference

import "errors"

// Catalog errors.
var (
	ErrFoodNotFound     = errors.New("food not found")
	ErrActivityNotFound = errors.New("activity not found")
)

// DefaultSearchLimit is applied when a caller does not supply a limit.
const DefaultSearchLimit = 20

// FoodEntry describes one food with nutrient values per 100 grams.
type FoodEntry struct {
	Name     string
	Calories float64 // kcal per 100 g
	Protein  float64 // g per 100 g
	Fat      float64 // g per 100 g
	Carbs    float64 // g per 100 g
	Fiber    float64 // g per 100 g
	Sugar    float64 // g per 100 g
	Source   string
}

// ActivityEntry describes one physical activity with its MET coefficient.
type ActivityEntry struct {
	Name     string
	MET      float64
	Category string
}
