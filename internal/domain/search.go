package domain

import (
	"sort"
	"strings"
)

// PropertyFilter narrows a property listing. Zero values mean "no bound".
type PropertyFilter struct {
	City        string  `json:"city,omitempty"`
	MinPrice    float64 `json:"min_price,omitempty"`
	MaxPrice    float64 `json:"max_price,omitempty"`
	SortByPrice bool    `json:"sort_by_price,omitempty"`
}

// IsZero reports whether the filter selects everything in id order
func (f PropertyFilter) IsZero() bool {
	return f == PropertyFilter{}
}

// Validate rejects non-finite, negative or inverted price bounds
func (f PropertyFilter) Validate() error {
	if err := RequireFinite("Minimum price", f.MinPrice); err != nil {
		return err
	}
	if err := RequireFinite("Maximum price", f.MaxPrice); err != nil {
		return err
	}
	if f.MinPrice < 0 {
		return InvalidInput("Minimum price must not be negative.")
	}
	if f.MaxPrice < 0 {
		return InvalidInput("Maximum price must not be negative.")
	}
	if f.MinPrice > 0 && f.MaxPrice > 0 && f.MinPrice > f.MaxPrice {
		return InvalidInput("Minimum price must not exceed maximum price.")
	}
	return nil
}

// Matches reports whether p passes the city and price bounds
func (f PropertyFilter) Matches(p Property) bool {
	if f.City != "" && !strings.EqualFold(strings.TrimSpace(f.City), p.City) {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return true
}

// FilterProperties returns the properties matching f. The input order is
// preserved unless SortByPrice is set, in which case the result is sorted
// ascending by price with ties kept in input order.
func FilterProperties(props []Property, f PropertyFilter) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	if f.SortByPrice {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	}
	return out
}
