//go:build property
// +build property

package catalog

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func skuList() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf("A1", "a1", " A1 ", "B2", "C3", "c3", "D4", "", "E5"))
}

func toProducts(source string, skus []string) []Product {
	out := make([]Product, 0, len(skus))
	for _, sku := range skus {
		out = append(out, Product{SKU: sku, Model: source})
	}
	return out
}

// Property: Merge never yields two records with the same SKU key, and each
// kept record comes from the first list that carried its SKU.
func TestMergeSKUUniqueness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("merge keeps one record per sku, first source wins", prop.ForAll(
		func(scraped, curated []string) bool {
			merged := Merge(toProducts("scraped", scraped), toProducts("curated", curated))

			firstSource := map[string]string{}
			for _, sku := range scraped {
				if key := SKUKey(sku); key != "" {
					if _, ok := firstSource[key]; !ok {
						firstSource[key] = "scraped"
					}
				}
			}
			for _, sku := range curated {
				if key := SKUKey(sku); key != "" {
					if _, ok := firstSource[key]; !ok {
						firstSource[key] = "curated"
					}
				}
			}

			seen := map[string]bool{}
			for _, p := range merged {
				key := SKUKey(p.SKU)
				if key == "" || seen[key] || firstSource[key] != p.Model {
					return false
				}
				seen[key] = true
			}
			return len(seen) == len(firstSource)
		},
		skuList(),
		skuList(),
	))

	properties.TestingRun(t)
}
