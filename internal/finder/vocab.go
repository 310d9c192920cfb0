package finder

import (
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
)

// Vocabulary is the set of values each dimension carries across a catalog.
type Vocabulary map[string][]string

// NewVocabulary collects the distinct values of every dimension in c.
func NewVocabulary(c catalog.Catalog) Vocabulary {
	vocab := make(Vocabulary, len(dimensions))
	for _, d := range dimensions {
		vocab[d.key] = distinctValues(d, c)
	}
	return vocab
}

func distinctValues(d dimension, products []catalog.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		for _, value := range d.values(p) {
			key := strings.ToLower(value)
			if value == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, value)
		}
	}
	return out
}

// filter canonicalizes raw, drops duplicates and keeps only values the
// catalog can satisfy. Exact hits take the catalog's spelling; aliases such
// as "OMEN" or "LED" are kept as given.
func (v Vocabulary) filter(d dimension, raw []string) []string {
	known := v[d.key]
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, value := range raw {
		value = d.canon(value)
		if value == "" {
			continue
		}
		resolved, ok := resolve(d, known, value)
		if !ok {
			continue
		}
		key := strings.ToLower(resolved)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, resolved)
	}
	return out
}

func resolve(d dimension, known []string, value string) (string, bool) {
	for _, candidate := range known {
		if strings.EqualFold(candidate, value) {
			return candidate, true
		}
	}
	for _, candidate := range known {
		if d.match(candidate, value) {
			return value, true
		}
	}
	return "", false
}
