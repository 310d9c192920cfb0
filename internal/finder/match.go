package finder

import (
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
)

// Matches reports whether p passes every constraint in s. Empty constraints
// always pass.
func Matches(p catalog.Product, s Selection) bool {
	if q := strings.ToLower(strings.TrimSpace(s.Query)); q != "" {
		haystack := strings.ToLower(p.Brand + " " + p.Model)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	if s.MinPrice > 0 && p.Price < s.MinPrice {
		return false
	}
	if s.MaxPrice > 0 && p.Price > s.MaxPrice {
		return false
	}
	if s.StorageMin > 0 && p.StorageGB < s.StorageMin {
		return false
	}
	for _, d := range dimensions {
		if !d.matches(p, d.get(&s)) {
			return false
		}
	}
	for _, t := range toggles {
		if *t.ptr(&s.Toggles) && !t.enabled(p.Features) {
			return false
		}
	}
	return true
}

// Filter returns the products matching s in catalog order.
func Filter(c catalog.Catalog, s Selection) catalog.Catalog {
	out := make(catalog.Catalog, 0, len(c))
	for _, p := range c {
		if Matches(p, s) {
			out = append(out, p)
		}
	}
	return out
}

// Count is len(Filter(c, s)) without the allocation.
func Count(c catalog.Catalog, s Selection) int {
	n := 0
	for _, p := range c {
		if Matches(p, s) {
			n++
		}
	}
	return n
}
