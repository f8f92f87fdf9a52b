// internal/models/product.go
package models

// Product is a catalog entry. OriginalPrice, when set, is the pre-discount
// price and must be >= Price. Colors holds hex color tokens; an empty slice
// means the product has no color variants.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Images        []string `json:"images"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Colors        []string `json:"colors,omitempty"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags,omitempty"`
	Featured      bool     `json:"featured"`
	InStock       bool     `json:"in_stock"`
}

// HasAnyColor reports whether the product carries at least one of the
// requested color tokens.
func (p Product) HasAnyColor(colors []string) bool {
	for _, want := range colors {
		for _, have := range p.Colors {
			if have == want {
				return true
			}
		}
	}
	return false
}
