package models

// FoodReference is the API representation of a food catalog entry.
// Nutrient values are per 100 g.
type FoodReference struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Source   string  `json:"source"`
}

// ActivityReference is the API representation of an activity catalog entry.
type ActivityReference struct {
	Name     string  `json:"name"`
	MET      float64 `json:"met"`
	Category string  `json:"category"`
}

// FoodSearchResult wraps a ranked food search response.
type FoodSearchResult struct {
	Query string          `json:"query"`
	Items []FoodReference `json:"items"`
}

// ActivitySearchResult wraps a ranked activity search response.
type ActivitySearchResult struct {
	Query      string              `json:"query"`
	Category   string              `json:"category,omitempty"`
	Categories []string            `json:"categories,omitempty"`
	Items      []ActivityReference `json:"items"`
}
