package catalog

import (
	"sort"
	"strings"

	"farmmarket/internal/domain"
)

// SortKey selects the ordering of filtered results.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// PriceRange is an inclusive price window.
type PriceRange struct {
	Min float64
	Max float64
}

// Filter is the full set of browse criteria. The zero value is not
// useful; build one with DefaultFilter and override fields.
type Filter struct {
	Category   string
	Location   string
	Search     string
	PriceRange PriceRange
	SortBy     SortKey
}

// DefaultFilter matches every product in the seeded catalog and keeps
// catalog order.
func DefaultFilter() Filter {
	return Filter{
		Category:   domain.CategoryAll,
		Location:   domain.LocationAll,
		PriceRange: PriceRange{Min: 0, Max: 1000},
		SortBy:     SortPopular,
	}
}

// Apply runs the filter/sort pipeline over products and returns a new
// slice. It is a pure function: the input is never reordered or
// mutated, and an empty result is a valid outcome, not an error.
func Apply(products []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}

	// Stable sort so equal keys keep catalog order.
	switch f.SortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		// "popular" and unknown keys keep catalog order.
	}

	return out
}

func matches(p domain.Product, f Filter) bool {
	return matchesCategory(p, f.Category) &&
		matchesLocation(p, f.Location) &&
		matchesSearch(p, f.Search) &&
		p.Price >= f.PriceRange.Min && p.Price <= f.PriceRange.Max
}

func matchesCategory(p domain.Product, category string) bool {
	switch category {
	case domain.CategoryAll, "":
		return true
	case domain.CategoryOrganic:
		return p.Organic
	default:
		return p.Category == category
	}
}

func matchesLocation(p domain.Product, location string) bool {
	return location == domain.LocationAll || location == "" || p.Location == location
}

func matchesSearch(p domain.Product, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(search))
}
