package models

// Service represents a single offering in the service catalogue.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       int     `json:"price"` // whole rupees
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description"`
	Popular     bool    `json:"popular,omitempty"`
}

// Catalogue categories.
const (
	CategoryAll       = "all"
	CategoryCleaning  = "cleaning"
	CategoryLaundry   = "laundry"
	CategorySpecialty = "specialty"
)

// Sort keys accepted by the catalogue engine.
const (
	SortPopular   = "popular"
	SortRating    = "rating"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// FilterCriteria captures one user interaction with the services page filters.
type FilterCriteria struct {
	SearchTerm string `json:"searchTerm"`
	Category   string `json:"category"`   // category constant or "all"
	PriceRange string `json:"priceRange"` // e.g. "all", "500-1000", "1500"
	SortBy     string `json:"sortBy"`
}

// DefaultFilterCriteria returns the criteria the services page opens with.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		SearchTerm: "",
		Category:   CategoryAll,
		PriceRange: PriceRangeAll,
		SortBy:     SortPopular,
	}
}
