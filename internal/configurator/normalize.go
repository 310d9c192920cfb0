package configurator

import (
	"sort"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
)

// Normalize dedupes options by Key and prices them against the included option.
func Normalize(raw []RawCategory) []Category {
	return NormalizeWithBase(raw, 0)
}

// NormalizeWithBase is Normalize with a listing price used for options whose
// note is an absolute configuration price rather than a signed delta.
func NormalizeWithBase(raw []RawCategory, basePrice int) []Category {
	categories := make([]Category, 0, len(raw))
	for _, rc := range MergeRaw(raw) {
		options := mergeOptions(rc.Options)
		if len(options) == 0 {
			continue
		}
		sort.SliceStable(options, func(i, j int) bool {
			if options[i].Included != options[j].Included {
				return options[i].Included
			}
			return strings.ToLower(options[i].Name) < strings.ToLower(options[j].Name)
		})
		// Included options sort first; the head stays included (forced when
		// none was) and any other included duplicate is cleared.
		for i := range options {
			options[i].Included = i == 0
		}

		priceDeltas(options, basePrice)
		categories = append(categories, Category{Name: normalize.Clean(rc.Name), Options: options})
	}
	return categories
}

func mergeOptions(raw []RawOption) []Option {
	index := make(map[string]int, len(raw))
	merged := make([]Option, 0, len(raw))
	for _, ro := range raw {
		name := normalize.Clean(ro.Name)
		key := Key(name)
		if key == "" {
			continue
		}
		i, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, Option{
				Name:      name,
				Details:   normalize.Clean(ro.Details),
				PriceNote: strings.TrimSpace(ro.PriceNote),
				Included:  ro.Included,
				Codes:     unionCodes(nil, ro.Codes),
			})
			continue
		}

		existing := &merged[i]
		existing.Codes = unionCodes(existing.Codes, ro.Codes)
		existing.Included = existing.Included || ro.Included
		if details := normalize.Clean(ro.Details); len(details) > len(existing.Details) {
			existing.Details = details
		}
		if existing.PriceNote == "" {
			existing.PriceNote = strings.TrimSpace(ro.PriceNote)
		}
	}
	return merged
}

func unionCodes(have, add []string) []string {
	for _, code := range add {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		dup := false
		for _, existing := range have {
			if strings.EqualFold(existing, code) {
				dup = true
				break
			}
		}
		if !dup {
			have = append(have, code)
		}
	}
	return have
}

// MergeRaw folds categories from several configurator pages into one matrix,
// keyed by category name in first-seen order. Options are concatenated; dedup
// happens in Normalize.
func MergeRaw(pages ...[]RawCategory) []RawCategory {
	index := map[string]int{}
	var merged []RawCategory
	for _, page := range pages {
		for _, rc := range page {
			key := Key(rc.Name)
			if key == "" {
				continue
			}
			if i, ok := index[key]; ok {
				merged[i].Options = append(merged[i].Options, rc.Options...)
				continue
			}
			index[key] = len(merged)
			merged = append(merged, RawCategory{
				Name:    rc.Name,
				Options: append([]RawOption(nil), rc.Options...),
			})
		}
	}
	return merged
}
