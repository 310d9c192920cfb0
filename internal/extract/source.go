// Package extract turns vendor listing pages into catalog products. It only
// reads HTML; every field is parsed by the normalize package.
package extract

import "strings"

const (
	defaultCurrency = "INR"
	defaultRegion   = "IN"
)

// Selectors locate the parts of a product card. Empty fields fall back to
// DefaultSelectors.
type Selectors struct {
	Card     string
	Title    string
	Link     string
	Price    string
	SKU      string
	Image    string
	Features string
	Rating   string
}

// DefaultSelectors match Magento-style storefront listings.
var DefaultSelectors = Selectors{
	Card:     "li.product-item",
	Title:    ".product-item-link, .product-item-name a, .product-item-name",
	Link:     "a.product-item-link, .product-item-name a, a.product-item-photo",
	Price:    "[data-price-amount], .price",
	SKU:      "[data-product-sku], [data-sku], .product-sku, .sku",
	Image:    "img.product-image-photo, img",
	Features: ".product-item-description li, .product-features li, .key-features li",
	Rating:   ".rating-result, .rating-summary",
}

// Source describes one listing endpoint.
type Source struct {
	Brand     string
	URL       string
	Currency  string
	Region    string
	Selectors Selectors
}

// NewSource builds a source with the default currency, region and selectors.
func NewSource(brand, url string) Source {
	return Source{Brand: brand, URL: url}.withDefaults()
}

func (s Source) withDefaults() Source {
	s.Brand = strings.TrimSpace(s.Brand)
	s.URL = strings.TrimSpace(s.URL)
	if s.Currency == "" {
		s.Currency = defaultCurrency
	}
	if s.Region == "" {
		s.Region = defaultRegion
	}
	s.Selectors = s.Selectors.withDefaults()
	return s
}

func (s Selectors) withDefaults() Selectors {
	fill := func(dst *string, fallback string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = fallback
		}
	}
	fill(&s.Card, DefaultSelectors.Card)
	fill(&s.Title, DefaultSelectors.Title)
	fill(&s.Link, DefaultSelectors.Link)
	fill(&s.Price, DefaultSelectors.Price)
	fill(&s.SKU, DefaultSelectors.SKU)
	fill(&s.Image, DefaultSelectors.Image)
	fill(&s.Features, DefaultSelectors.Features)
	fill(&s.Rating, DefaultSelectors.Rating)
	return s
}
