package catalog

import "strings"

// Catalog is an ordered, SKU-unique list of products.
type Catalog []Product

// Merge unions product lists in priority order. The first record seen for a
// SKU wins; records without a SKU are dropped.
func Merge(lists ...[]Product) Catalog {
	seen := make(map[string]struct{})
	var merged Catalog
	for _, list := range lists {
		for _, product := range list {
			key := SKUKey(product.SKU)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, product)
		}
	}
	return merged
}

// BySKU indexes the catalog by SKU.
func (c Catalog) BySKU() map[string]Product {
	index := make(map[string]Product, len(c))
	for _, product := range c {
		index[SKUKey(product.SKU)] = product
	}
	return index
}

// SKUs lists the catalog SKUs in order.
func (c Catalog) SKUs() []string {
	skus := make([]string, 0, len(c))
	for _, product := range c {
		skus = append(skus, product.SKU)
	}
	return skus
}

// ByID finds a product by store id.
func (c Catalog) ByID(id uint) (Product, bool) {
	for _, product := range c {
		if product.ID == id {
			return product, true
		}
	}
	return Product{}, false
}

// SKUKey is the case-insensitive identity used for SKU merges and lookups.
func SKUKey(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
