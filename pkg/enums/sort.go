package enums

import "strings"

// SortKey selects the ordering applied to finder results.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceAsc    SortKey = "price_asc"
	SortPriceDesc   SortKey = "price_desc"
	SortRating      SortKey = "rating"
	SortBattery     SortKey = "battery"
	SortWeight      SortKey = "weight"
)

var validSortKeys = []SortKey{
	SortRecommended,
	SortPriceAsc,
	SortPriceDesc,
	SortRating,
	SortBattery,
	SortWeight,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey never fails: unknown keys fall back to SortRecommended.
func ParseSortKey(value string) SortKey {
	key := SortKey(strings.ToLower(strings.TrimSpace(value)))
	if key.IsValid() {
		return key
	}
	return SortRecommended
}
