package finder

import (
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

type FacetOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

type Facet struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Options []FacetOption `json:"options"`
}

// PriceBounds is the price span of the scoped catalog.
type PriceBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// scopes narrows c by the selected brands, then by the selected series inside
// that brand scope. A series narrowing that leaves nothing falls back to the
// brand scope.
func scopes(c catalog.Catalog, s Selection) (brandScope, seriesScope catalog.Catalog) {
	brand, _ := dimensionByKey("brand")
	series, _ := dimensionByKey("series")

	brandScope = c
	if len(s.Brands) > 0 {
		brandScope = narrow(c, brand, s.Brands)
	}
	seriesScope = brandScope
	if len(s.Series) > 0 {
		if narrowed := narrow(brandScope, series, s.Series); len(narrowed) > 0 {
			seriesScope = narrowed
		}
	}
	return brandScope, seriesScope
}

func narrow(c catalog.Catalog, d dimension, selected []string) catalog.Catalog {
	out := make(catalog.Catalog, 0, len(c))
	for _, p := range c {
		if d.matches(p, selected) {
			out = append(out, p)
		}
	}
	return out
}

// Facets computes the option lists for s. Brand options come from the whole
// catalog, series options from the brand scope and everything else from the
// series scope. Selected values are always listed, even with a zero count.
func Facets(c catalog.Catalog, s Selection) ([]Facet, PriceBounds) {
	brandScope, seriesScope := scopes(c, s)

	facets := make([]Facet, 0, len(dimensions)+2)
	for _, d := range dimensions {
		scope := seriesScope
		switch d.key {
		case "brand":
			scope = c
		case "series":
			scope = brandScope
		}
		facets = append(facets, dimensionFacet(d, scope, d.get(&s)))
		if d.key == "series" {
			facets = append(facets, useCaseFacet(seriesScope, s.UseCase))
		}
	}
	facets = append(facets, featureFacet(seriesScope, s.Toggles))
	return facets, priceBounds(seriesScope)
}

func dimensionFacet(d dimension, scope catalog.Catalog, selected []string) Facet {
	counts := make(map[string]int)
	values := distinctValues(d, scope)
	for _, p := range scope {
		for _, value := range d.values(p) {
			counts[strings.ToLower(value)]++
		}
	}

	present := make(map[string]struct{}, len(values))
	for _, value := range values {
		present[strings.ToLower(value)] = struct{}{}
	}
	for _, value := range selected {
		if _, ok := present[strings.ToLower(value)]; !ok {
			present[strings.ToLower(value)] = struct{}{}
			values = append(values, value)
		}
	}
	d.sortValues(values)

	chosen := make(map[string]struct{}, len(selected))
	for _, value := range selected {
		chosen[strings.ToLower(value)] = struct{}{}
	}
	options := make([]FacetOption, 0, len(values))
	for _, value := range values {
		_, isSelected := chosen[strings.ToLower(value)]
		options = append(options, FacetOption{
			Value:    value,
			Label:    valueLabel(d.key, value),
			Count:    counts[strings.ToLower(value)],
			Selected: isSelected,
		})
	}
	return Facet{Key: d.key, Label: d.label, Options: options}
}

func useCaseFacet(scope catalog.Catalog, selected enums.UseCase) Facet {
	options := make([]FacetOption, 0, len(enums.UseCaseOrder))
	for _, value := range enums.UseCaseOrder {
		useCase := enums.UseCase(value)
		count := 0
		for _, p := range scope {
			if p.HasUseCase(useCase) {
				count++
			}
		}
		if count == 0 && useCase != selected {
			continue
		}
		options = append(options, FacetOption{
			Value:    value,
			Label:    valueLabel("use_case", value),
			Count:    count,
			Selected: useCase == selected,
		})
	}
	return Facet{Key: "use_case", Label: "Use case", Options: options}
}

func featureFacet(scope catalog.Catalog, selected Toggles) Facet {
	options := make([]FacetOption, 0, len(toggles))
	for _, t := range toggles {
		count := 0
		for _, p := range scope {
			if t.enabled(p.Features) {
				count++
			}
		}
		on := *t.ptr(&selected)
		if count == 0 && !on {
			continue
		}
		options = append(options, FacetOption{
			Value:    t.key,
			Label:    t.label,
			Count:    count,
			Selected: on,
		})
	}
	return Facet{Key: "features", Label: "Features", Options: options}
}

func priceBounds(scope catalog.Catalog) PriceBounds {
	var bounds PriceBounds
	for i, p := range scope {
		if i == 0 || p.Price < bounds.Min {
			bounds.Min = p.Price
		}
		if p.Price > bounds.Max {
			bounds.Max = p.Price
		}
	}
	return bounds
}

func valueLabel(key, value string) string {
	switch key {
	case "ram":
		return value + " GB"
	case "refresh":
		return value + "Hz"
	case "gpu_type", "use_case":
		if value == "" {
			return value
		}
		return strings.ToUpper(value[:1]) + value[1:]
	case "cpu_tier":
		if strings.HasPrefix(value, "i") {
			return "Core " + value
		}
	}
	return value
}
