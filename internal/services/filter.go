// internal/services/filter.go
package services

import (
	"strings"

	"github.com/atjshop/storefront/internal/models"
)

// ProductFilter narrows a product collection. Every set field must match
// (logical AND across dimensions); within Colors a product matches if it
// carries at least one of the requested tokens. Unset fields match
// everything.
type ProductFilter struct {
	Category  string   `json:"category,omitempty"`
	Brand     string   `json:"brand,omitempty"`
	MinPrice  *float64 `json:"min_price,omitempty"`
	MaxPrice  *float64 `json:"max_price,omitempty"`
	MinRating *float64 `json:"min_rating,omitempty"`
	Colors    []string `json:"colors,omitempty"`
}

// IsZero reports whether the filter matches everything.
func (f ProductFilter) IsZero() bool {
	return f.Category == "" && f.Brand == "" &&
		f.MinPrice == nil && f.MaxPrice == nil && f.MinRating == nil &&
		len(f.Colors) == 0
}

// Matches applies every set dimension to a single product.
func (f ProductFilter) Matches(p models.Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	if len(f.Colors) > 0 && !p.HasAnyColor(f.Colors) {
		return false
	}
	return true
}

// FilterProducts returns the subset of products satisfying the filter,
// preserving input order. The result is always a subset of the input; an
// empty result is not an error.
func FilterProducts(products []models.Product, filter ProductFilter) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
