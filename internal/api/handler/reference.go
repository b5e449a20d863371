package handler

import (
	"net/http"
	"strconv"

	"github.com/nutrilog/nutrilog/internal/api/models"
	"github.com/nutrilog/nutrilog/internal/api/response"
	"github.com/nutrilog/nutrilog/internal/reference"
)

// ReferenceHandler handles food and activity reference search endpoints.
type ReferenceHandler struct {
	foods      *reference.FoodCatalog
	activities *reference.ActivityCatalog
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(foods *reference.FoodCatalog, activities *reference.ActivityCatalog) *ReferenceHandler {
	return &ReferenceHandler{foods: foods, activities: activities}
}

// SearchFoods handles GET /v1/reference/foods?q=...&limit=...
func (h *ReferenceHandler) SearchFoods(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := parseLimit(r.URL.Query().Get("limit"))

	entries := h.foods.Search(query, limit)

	result := models.FoodSearchResult{
		Query: query,
		Items: make([]models.FoodReference, 0, len(entries)),
	}
	for _, e := range entries {
		result.Items = append(result.Items, toAPIFoodReference(e))
	}

	response.JSON(w, r, http.StatusOK, result)
}

// SearchActivities handles GET /v1/reference/activities?q=...&category=...&limit=...
func (h *ReferenceHandler) SearchActivities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	limit := parseLimit(r.URL.Query().Get("limit"))

	entries := h.activities.Search(query, category, limit)

	result := models.ActivitySearchResult{
		Query:      query,
		Category:   category,
		Categories: h.activities.Categories(),
		Items:      make([]models.ActivityReference, 0, len(entries)),
	}
	for _, e := range entries {
		result.Items = append(result.Items, models.ActivityReference{
			Name:     e.Name,
			MET:      e.MET,
			Category: e.Category,
		})
	}

	response.JSON(w, r, http.StatusOK, result)
}

// parseLimit parses the limit query parameter, falling back to the catalog
// default on absent or invalid values.
func parseLimit(raw string) int {
	if raw == "" {
		return reference.DefaultSearchLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return reference.DefaultSearchLimit
	}
	if limit > reference.DefaultSearchLimit {
		return reference.DefaultSearchLimit
	}
	return limit
}

func toAPIFoodReference(e reference.FoodEntry) models.FoodReference {
	return models.FoodReference{
		Name:     e.Name,
		Calories: e.Calories,
		Protein:  e.Protein,
		Fat:      e.Fat,
		Carbs:    e.Carbs,
		Fiber:    e.Fiber,
		Sugar:    e.Sugar,
		Source:   e.Source,
	}
}
