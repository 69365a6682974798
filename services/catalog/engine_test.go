package catalog

import (
	"testing"

	"maidease/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criteria(search, category, price, sortBy string) models.FilterCriteria {
	return models.FilterCriteria{
		SearchTerm: search,
		Category:   category,
		PriceRange: price,
		SortBy:     sortBy,
	}
}

func ids(services []models.Service) []int {
	out := make([]int, 0, len(services))
	for _, svc := range services {
		out = append(out, svc.ID)
	}
	return out
}

func TestFilterAndSortSearchPriceLow(t *testing.T) {
	result, err := FilterAndSort(Default(), criteria("clean", models.CategoryAll, models.PriceRangeAll, models.SortPriceLow))
	require.NoError(t, err)
	require.NotEmpty(t, result)

	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Price, result[i].Price)
	}

	// Laundry & Ironing mentions neither "clean" nor "cleaning".
	assert.NotContains(t, ids(result), 5)

	pos := map[string]int{}
	for i, svc := range result {
		pos[svc.Name] = i
	}
	assert.Less(t, pos["Bathroom Deep Clean"], pos["Regular House Cleaning"])
	assert.Less(t, pos["Regular House Cleaning"], pos["Deep House Cleaning"])
}

func TestFilterAndSortCategory(t *testing.T) {
	result, err := FilterAndSort(Default(), criteria("", models.CategoryLaundry, models.PriceRangeAll, models.SortPopular))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Laundry & Ironing", result[0].Name)
	assert.Equal(t, 300, result[0].Price)
}

func TestFilterAndSortOpenEndedPriceRange(t *testing.T) {
	result, err := FilterAndSort(Default(), criteria("", models.CategoryAll, "1500", models.SortPopular))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Move-in/Move-out Cleaning", result[0].Name)
}

func TestFilterAndSortBoundedPriceRange(t *testing.T) {
	result, err := FilterAndSort(Default(), criteria("", models.CategoryAll, "500-1000", models.SortPriceHigh))
	require.NoError(t, err)
	for _, svc := range result {
		assert.GreaterOrEqual(t, svc.Price, 500)
		assert.LessOrEqual(t, svc.Price, 1000)
	}
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Price, result[i].Price)
	}
}

func TestFilterAndSortStability(t *testing.T) {
	services := []models.Service{
		{ID: 1, Name: "A", Category: models.CategoryCleaning, Price: 100, Reviews: 50},
		{ID: 2, Name: "B", Category: models.CategoryCleaning, Price: 200, Reviews: 50},
		{ID: 3, Name: "C", Category: models.CategoryCleaning, Price: 300, Reviews: 50},
	}

	result, err := FilterAndSort(services, criteria("", models.CategoryAll, models.PriceRangeAll, models.SortPopular))
	require.NoError(t, err)
	// Equal review counts keep their original catalogue order.
	assert.Equal(t, []int{1, 2, 3}, ids(result))
}

func TestFilterAndSortIdempotent(t *testing.T) {
	input := Default()
	crit := criteria("clean", models.CategoryCleaning, "0-500", models.SortRating)

	first, err := FilterAndSort(input, crit)
	require.NoError(t, err)
	second, err := FilterAndSort(input, crit)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// The input catalogue itself is never reordered.
	assert.Equal(t, Default(), input)
}

func TestFilterCompositionResultSet(t *testing.T) {
	full := Default()
	combined, err := FilterAndSort(full, criteria("clean", models.CategorySpecialty, "0-500", models.SortPopular))
	require.NoError(t, err)

	// The surviving set must equal the manual intersection of the three
	// filters, whatever order they were applied in.
	want := map[int]bool{}
	for _, svc := range full {
		if svc.Category == models.CategorySpecialty && svc.Price <= 500 {
			want[svc.ID] = true
		}
	}
	got := map[int]bool{}
	for _, svc := range combined {
		got[svc.ID] = true
	}
	assert.Equal(t, want, got)
}

func TestFilterAndSortEmptyResults(t *testing.T) {
	result, err := FilterAndSort(Default(), criteria("no such service", models.CategoryAll, models.PriceRangeAll, models.SortPopular))
	require.NoError(t, err)
	assert.Empty(t, result)

	result, err = FilterAndSort(nil, criteria("", models.CategoryAll, models.PriceRangeAll, models.SortPopular))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestFilterAndSortRejectsUnknownCriteria(t *testing.T) {
	cases := []struct {
		name string
		crit models.FilterCriteria
	}{
		{"unknown category", criteria("", "plumbing", models.PriceRangeAll, models.SortPopular)},
		{"unknown sort key", criteria("", models.CategoryAll, models.PriceRangeAll, "cheapest")},
		{"malformed price range", criteria("", models.CategoryAll, "abc-def", models.SortPopular)},
		{"inverted price range", criteria("", models.CategoryAll, "1000-500", models.SortPopular)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FilterAndSort(Default(), tc.crit)
			require.Error(t, err)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCategoryCounts(t *testing.T) {
	counts := CategoryCounts(Default())
	assert.Equal(t, 8, counts[models.CategoryAll])
	assert.Equal(t, 4, counts[models.CategoryCleaning])
	assert.Equal(t, 1, counts[models.CategoryLaundry])
	assert.Equal(t, 3, counts[models.CategorySpecialty])

	assert.Equal(t, map[string]int{models.CategoryAll: 0}, CategoryCounts(nil))
}

func TestFindByID(t *testing.T) {
	svc, ok := FindByID(Default(), 8)
	require.True(t, ok)
	assert.Equal(t, "Move-in/Move-out Cleaning", svc.Name)

	_, ok = FindByID(Default(), 99)
	assert.False(t, ok)
}
