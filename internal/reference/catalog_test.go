package reference_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilog/nutrilog/internal/reference"
)

func TestFoodCatalog_Search_PrefixBeforeSubstring(t *testing.T) {
	catalog := reference.NewFoodCatalog()

	results := catalog.Search("mela", 0)
	require.NotEmpty(t, results)

	assert.Equal(t, "Mele fresche", results[0].Name)

	// Every result must relate to the query; "Succo di mela" is a substring
	// match and must rank after all prefix matches.
	var succoIdx, melanzaneIdx int = -1, -1
	for i, e := range results {
		lower := strings.ToLower(e.Name)
		assert.True(t,
			strings.Contains(lower, "mela") || strings.HasPrefix(lower, "mel"),
			"unexpected result %q", e.Name)
		if e.Name == "Succo di mela" {
			succoIdx = i
		}
		if e.Name == "Melanzane" {
			melanzaneIdx = i
		}
	}
	require.NotEqual(t, -1, succoIdx)
	require.NotEqual(t, -1, melanzaneIdx)
	assert.Greater(t, succoIdx, melanzaneIdx, "substring match ranked before prefix match")
}

func TestFoodCatalog_Search_EmptyQuery(t *testing.T) {
	catalog := reference.NewFoodCatalog()

	assert.Empty(t, catalog.Search("", 10))
	assert.Empty(t, catalog.Search("   ", 10))
}

func TestFoodCatalog_Search_CaseInsensitive(t *testing.T) {
	catalog := reference.NewFoodCatalog()

	upper := catalog.Search("MELA", 10)
	lower := catalog.Search("mela", 10)
	require.NotEmpty(t, upper)
	assert.Equal(t, lower, upper)
}

func TestFoodCatalog_Search_Limit(t *testing.T) {
	catalog := reference.NewFoodCatalog()

	results := catalog.Search("a", 3)
	assert.LessOrEqual(t, len(results), 3)
}

func TestFoodCatalog_Search_NoMatches(t *testing.T) {
	catalog := reference.NewFoodCatalog()

	assert.Empty(t, catalog.Search("xyzzy", 10))
}

func TestFoodCatalog_GetByName(t *testing.T) {
	catalog := reference.NewFoodCatalog()

	entry, err := catalog.GetByName("mele fresche")
	require.NoError(t, err)
	assert.Equal(t, "Mele fresche", entry.Name)
	assert.InDelta(t, 52, entry.Calories, 0.01)

	_, err = catalog.GetByName("does not exist")
	assert.ErrorIs(t, err, reference.ErrFoodNotFound)
}

func TestActivityCatalog_Search_EmptyQueryBrowses(t *testing.T) {
	catalog := reference.NewActivityCatalog()

	// Empty query lists the catalog head instead of returning nothing.
	results := catalog.Search("", "", 5)
	require.Len(t, results, 5)
	assert.Equal(t, "Camminata lenta (4 km/h)", results[0].Name)
}

func TestActivityCatalog_Search_CategoryFilter(t *testing.T) {
	catalog := reference.NewActivityCatalog()

	results := catalog.Search("", "corsa", 0)
	require.NotEmpty(t, results)
	for _, e := range results {
		assert.Equal(t, "corsa", e.Category)
	}

	// Filter applies before ranking.
	ranked := catalog.Search("corsa", "corsa", 0)
	require.NotEmpty(t, ranked)
	assert.Equal(t, "Corsa leggera (8 km/h)", ranked[0].Name)
}

func TestActivityCatalog_Search_UnknownCategory(t *testing.T) {
	catalog := reference.NewActivityCatalog()

	assert.Empty(t, catalog.Search("", "subacquea", 10))
}

func TestActivityCatalog_GetByName(t *testing.T) {
	catalog := reference.NewActivityCatalog()

	entry, err := catalog.GetByName("corsa leggera (8 km/h)")
	require.NoError(t, err)
	assert.InDelta(t, 8.3, entry.MET, 0.001)

	_, err = catalog.GetByName("curling")
	assert.ErrorIs(t, err, reference.ErrActivityNotFound)
}

func TestActivityCatalog_Categories(t *testing.T) {
	catalog := reference.NewActivityCatalog()

	categories := catalog.Categories()
	assert.Contains(t, categories, "corsa")
	assert.Contains(t, categories, "palestra")

	seen := make(map[string]bool)
	for _, c := range categories {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
}
