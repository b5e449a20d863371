package reference

import "strings"

// FoodCatalog provides ranked name search over the food reference table.
type FoodCatalog struct {
	entries []FoodEntry
}

// NewFoodCatalog creates a catalog over the built-in food table.
func NewFoodCatalog() *FoodCatalog {
	return &FoodCatalog{entries: defaultFoods}
}

// Search returns up to limit foods matching the query, exact-prefix matches
// before substring matches, each group in catalog order. An empty query
// returns no results: the food search box only suggests once the user types.
func (c *FoodCatalog) Search(query string, limit int) []FoodEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var prefix, partial []FoodEntry
	for _, e := range c.entries {
		name := strings.ToLower(e.Name)
		switch {
		case hasTolerantPrefix(name, query):
			prefix = append(prefix, e)
		case strings.Contains(name, query):
			partial = append(partial, e)
		}
	}

	results := append(prefix, partial...)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// GetByName returns the food with the given name, matched case-insensitively.
func (c *FoodCatalog) GetByName(name string) (FoodEntry, error) {
	for _, e := range c.entries {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return FoodEntry{}, ErrFoodNotFound
}

// Len returns the number of entries in the catalog.
func (c *FoodCatalog) Len() int {
	return len(c.entries)
}

// ActivityCatalog provides ranked name search over the activity table.
type ActivityCatalog struct {
	entries []ActivityEntry
}

// NewActivityCatalog creates a catalog over the built-in activity table.
func NewActivityCatalog() *ActivityCatalog {
	return &ActivityCatalog{entries: defaultActivities}
}

// Search returns up to limit activities matching the query with the same
// prefix-before-substring ranking as foods. Unlike foods, an empty query
// returns the first limit entries of the (category-filtered) catalog: the
// activity picker opens with a browsable list. An empty category disables
// the filter.
func (c *ActivityCatalog) Search(query, category string, limit int) []ActivityEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	candidates := c.entries
	if category != "" {
		filtered := make([]ActivityEntry, 0, len(candidates))
		for _, e := range candidates {
			if strings.EqualFold(e.Category, category) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	if query == "" {
		if len(candidates) > limit {
			candidates = candidates[:limit]
		}
		return candidates
	}

	var prefix, partial []ActivityEntry
	for _, e := range candidates {
		name := strings.ToLower(e.Name)
		switch {
		case hasTolerantPrefix(name, query):
			prefix = append(prefix, e)
		case strings.Contains(name, query):
			partial = append(partial, e)
		}
	}

	results := append(prefix, partial...)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// GetByName returns the activity with the given name, matched
// case-insensitively.
func (c *ActivityCatalog) GetByName(name string) (ActivityEntry, error) {
	for _, e := range c.entries {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return ActivityEntry{}, ErrActivityNotFound
}

// Categories returns the distinct activity categories in catalog order.
func (c *ActivityCatalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	return categories
}

// hasTolerantPrefix reports whether name starts with the query, tolerating a
// mismatch on the query's final character for queries of three or more runes.
// Italian food names inflect their last vowel for number and gender
// (mela/mele, uovo/uova), so "mela" must still front-rank "Mele fresche".
func hasTolerantPrefix(name, query string) bool {
	if strings.HasPrefix(name, query) {
		return true
	}
	runes := []rune(query)
	if len(runes) < 3 {
		return false
	}
	return strings.HasPrefix(name, string(runes[:len(runes)-1]))
}
