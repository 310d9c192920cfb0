// Package finder answers laptop finder queries over an in-memory catalog:
// matching, sorting, pagination, facet options and removable filter chips.
package finder

import (
	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/pkg/pagination"
)

// Result is one rendered finder page.
type Result struct {
	Items       []catalog.Product `json:"items"`
	Total       int               `json:"total"`
	Facets      []Facet           `json:"facet_options"`
	PriceBounds PriceBounds       `json:"price_bounds"`
	Chips       []Chip            `json:"active_filter_chips"`
	Pagination  pagination.Page   `json:"pagination"`
	Selection   Selection         `json:"selection"`
}

// Query normalizes sel against c and returns the matching page. It never
// fails: unknown values are dropped and out-of-range pages are clamped.
func Query(c catalog.Catalog, sel Selection) Result {
	sel = sel.Normalize(NewVocabulary(c))

	matched := Filter(c, sel)
	Sort(matched, sel.Sort, sel.UseCase)

	page := pagination.Clamp(sel.Page, sel.PageSize, len(matched))
	sel.Page = page.Page
	start, end := page.Bounds()

	facets, bounds := Facets(c, sel)
	return Result{
		Items:       matched[start:end],
		Total:       len(matched),
		Facets:      facets,
		PriceBounds: bounds,
		Chips:       Chips(sel),
		Pagination:  page,
		Selection:   sel,
	}
}
