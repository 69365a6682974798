package catalog

import (
	"fmt"
	"sort"
	"strings"

	"maidease/models"
)

var knownCategories = map[string]bool{
	models.CategoryCleaning:  true,
	models.CategoryLaundry:   true,
	models.CategorySpecialty: true,
}

// FilterAndSort applies the services-page filters to the given catalogue and
// returns the ordered subset to display. The input slice is never mutated and
// the result is deterministic for identical inputs. Stages run in a fixed
// order: search, category, price bracket, then a stable sort so that ties
// keep their original catalogue position.
func FilterAndSort(services []models.Service, criteria models.FilterCriteria) ([]models.Service, error) {
	if criteria.Category != models.CategoryAll && !knownCategories[criteria.Category] {
		return nil, newValidationError("category", fmt.Sprintf("unknown category %q", criteria.Category))
	}
	priceRange, err := models.ParsePriceRange(criteria.PriceRange)
	if err != nil {
		return nil, newValidationError("priceRange", err.Error())
	}

	filtered := make([]models.Service, 0, len(services))
	term := strings.ToLower(strings.TrimSpace(criteria.SearchTerm))
	for _, svc := range services {
		if term != "" && !matchesTerm(svc, term) {
			continue
		}
		if criteria.Category != models.CategoryAll && svc.Category != criteria.Category {
			continue
		}
		if priceRange != nil && !priceRange.Contains(svc.Price) {
			continue
		}
		filtered = append(filtered, svc)
	}

	switch criteria.SortBy {
	case models.SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Reviews > filtered[j].Reviews
		})
	case models.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case models.SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	default:
		return nil, newValidationError("sortBy", fmt.Sprintf("unknown sort key %q", criteria.SortBy))
	}

	return filtered, nil
}

func matchesTerm(svc models.Service, term string) bool {
	return strings.Contains(strings.ToLower(svc.Name), term) ||
		strings.Contains(strings.ToLower(svc.Description), term)
}

// CategoryCounts returns the facet counts for the category sidebar, including
// the synthetic "all" entry. It is always recomputed from the slice passed in.
func CategoryCounts(services []models.Service) map[string]int {
	counts := map[string]int{models.CategoryAll: len(services)}
	for _, svc := range services {
		counts[svc.Category]++
	}
	return counts
}
