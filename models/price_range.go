package models

import (
	"fmt"
	"strconv"
	"strings"
)

// PriceRangeAll disables price filtering.
const PriceRangeAll = "all"

// PriceRange is an inclusive price bracket. A nil Max means the bracket is
// open-ended (e.g. "1500+").
type PriceRange struct {
	Min int
	Max *int
}

// Contains reports whether price falls inside the bracket.
func (pr PriceRange) Contains(price int) bool {
	if price < pr.Min {
		return false
	}
	if pr.Max != nil && price > *pr.Max {
		return false
	}
	return true
}

// ParsePriceRange parses the bracket values used by the services page:
// "all", "0-500", "500-1000", "1000-1500", "1500" (open-ended).
func ParsePriceRange(value string) (*PriceRange, error) {
	if value == PriceRangeAll {
		return nil, nil
	}
	parts := strings.SplitN(value, "-", 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || min < 0 {
		return nil, fmt.Errorf("invalid price range %q", value)
	}
	pr := &PriceRange{Min: min}
	if len(parts) == 2 {
		max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || max < min {
			return nil, fmt.Errorf("invalid price range %q", value)
		}
		pr.Max = &max
	}
	return pr, nil
}
