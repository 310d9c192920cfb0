package finder

import (
	"sort"
	"strconv"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

// dimension is one set-valued facet. values lists what a product carries,
// match decides whether a product value satisfies a selected value, and
// canon folds user input into the stored vocabulary.
type dimension struct {
	key     string
	label   string
	values  func(p catalog.Product) []string
	match   func(product, selected string) bool
	canon   func(raw string) string
	order   []string
	numeric bool
	// all requires every selected value instead of any.
	all bool
	get func(s *Selection) []string
	set func(s *Selection, values []string)
}

func equalFold(product, selected string) bool {
	return strings.EqualFold(product, selected)
}

func one(value string) []string {
	if value == "" {
		return nil
	}
	return []string{value}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func trimmed(raw string) string {
	return strings.TrimSpace(raw)
}

func upper(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func lowerCase(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ints(values []int) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strconv.Itoa(v))
	}
	return out
}

func atois(values []string) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if n, err := strconv.Atoi(v); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func canonGPU(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	model, _ := normalize.GPU(raw)
	return model
}

func canonResolution(raw string) string {
	return string(normalize.Resolution(raw))
}

func canonRAM(raw string) string {
	raw = strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(raw)), "GB")
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func canonRefresh(raw string) string {
	raw = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "hz")
	if raw == normalize.Refresh240Plus {
		return raw
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return ""
	}
	return normalize.RefreshBucket(n)
}

// dimensions lists every set-valued facet in display order. brand and series
// come first because they scope the rest.
var dimensions = []dimension{
	{
		key:    "brand",
		label:  "Brand",
		values: func(p catalog.Product) []string { return one(p.Brand) },
		match:  equalFold,
		canon:  trimmed,
		get:    func(s *Selection) []string { return s.Brands },
		set:    func(s *Selection, v []string) { s.Brands = v },
	},
	{
		key:    "series",
		label:  "Series",
		values: func(p catalog.Product) []string { return one(p.Series) },
		match:  normalize.SeriesMatches,
		canon:  trimmed,
		get:    func(s *Selection) []string { return s.Series },
		set:    func(s *Selection, v []string) { s.Series = v },
	},
	{
		key:    "cpu_brand",
		label:  "CPU",
		values: func(p catalog.Product) []string { return one(string(p.CPUBrand)) },
		match:  equalFold,
		canon:  trimmed,
		get:    func(s *Selection) []string { return one(s.CPUBrand) },
		set:    func(s *Selection, v []string) { s.CPUBrand = first(v) },
	},
	{
		key:    "cpu_tier",
		label:  "CPU tier",
		values: func(p catalog.Product) []string { return one(p.CPUTier) },
		match:  equalFold,
		canon:  trimmed,
		order:  normalize.CPUTierOrder,
		get:    func(s *Selection) []string { return s.CPUTiers },
		set:    func(s *Selection, v []string) { s.CPUTiers = v },
	},
	{
		key:     "ram",
		label:   "RAM",
		values:  func(p catalog.Product) []string { return one(strconv.Itoa(p.RAMGB)) },
		match:   equalFold,
		canon:   canonRAM,
		numeric: true,
		get:     func(s *Selection) []string { return ints(s.RAM) },
		set:     func(s *Selection, v []string) { s.RAM = atois(v) },
	},
	{
		key:    "storage_type",
		label:  "Storage",
		values: func(p catalog.Product) []string { return one(string(p.StorageType)) },
		match:  equalFold,
		canon:  upper,
		order:  []string{string(enums.StorageTypeSSD), string(enums.StorageTypeHDD)},
		get:    func(s *Selection) []string { return s.StorageTypes },
		set:    func(s *Selection, v []string) { s.StorageTypes = v },
	},
	{
		key:    "gpu_type",
		label:  "Graphics",
		values: func(p catalog.Product) []string { return one(string(p.GPUType)) },
		match:  equalFold,
		canon:  lowerCase,
		order:  []string{string(enums.GPUTypeDedicated), string(enums.GPUTypeIntegrated)},
		get:    func(s *Selection) []string { return one(s.GPUType) },
		set:    func(s *Selection, v []string) { s.GPUType = first(v) },
	},
	{
		key:    "gpu",
		label:  "GPU",
		values: func(p catalog.Product) []string { return one(p.GPUModel) },
		match:  equalFold,
		canon:  canonGPU,
		order:  normalize.GPUOrder,
		get:    func(s *Selection) []string { return s.GPUModels },
		set:    func(s *Selection, v []string) { s.GPUModels = v },
	},
	{
		key:    "screen",
		label:  "Screen",
		values: func(p catalog.Product) []string { return one(normalize.ScreenBucket(p.ScreenSize)) },
		match:  equalFold,
		canon:  trimmed,
		order:  normalize.ScreenBucketOrder,
		get:    func(s *Selection) []string { return s.ScreenBuckets },
		set:    func(s *Selection, v []string) { s.ScreenBuckets = v },
	},
	{
		key:    "resolution",
		label:  "Resolution",
		values: func(p catalog.Product) []string { return one(string(p.Resolution)) },
		match:  normalize.ResolutionMatches,
		canon:  canonResolution,
		order:  enums.ResolutionOrder,
		get:    func(s *Selection) []string { return s.Resolutions },
		set:    func(s *Selection, v []string) { s.Resolutions = v },
	},
	{
		key:     "refresh",
		label:   "Refresh",
		values:  func(p catalog.Product) []string { return one(normalize.RefreshBucket(p.RefreshHz)) },
		match:   equalFold,
		canon:   canonRefresh,
		order:   normalize.RefreshBucketOrder,
		numeric: true,
		get:     func(s *Selection) []string { return s.RefreshBuckets },
		set:     func(s *Selection, v []string) { s.RefreshBuckets = v },
	},
	{
		key:    "panel",
		label:  "Panel",
		values: func(p catalog.Product) []string { return one(string(p.Panel)) },
		match:  normalize.PanelMatches,
		canon:  upper,
		order:  enums.PanelOrder,
		get:    func(s *Selection) []string { return s.Panels },
		set:    func(s *Selection, v []string) { s.Panels = v },
	},
	{
		key:    "weight",
		label:  "Weight",
		values: func(p catalog.Product) []string { return one(normalize.WeightBucket(p.WeightKg)) },
		match:  equalFold,
		canon:  trimmed,
		order:  normalize.WeightBucketOrder,
		get:    func(s *Selection) []string { return s.WeightBuckets },
		set:    func(s *Selection, v []string) { s.WeightBuckets = v },
	},
	{
		key:    "battery",
		label:  "Battery",
		values: func(p catalog.Product) []string { return one(normalize.BatteryBucket(p.BatteryHours)) },
		match:  equalFold,
		canon:  trimmed,
		order:  normalize.BatteryBucketOrder,
		get:    func(s *Selection) []string { return s.BatteryBuckets },
		set:    func(s *Selection, v []string) { s.BatteryBuckets = v },
	},
	{
		key:    "port",
		label:  "Port",
		values: func(p catalog.Product) []string { return p.Ports },
		match:  equalFold,
		canon:  trimmed,
		all:    true,
		get:    func(s *Selection) []string { return s.Ports },
		set:    func(s *Selection, v []string) { s.Ports = v },
	},
}

func dimensionByKey(key string) (dimension, bool) {
	for _, d := range dimensions {
		if d.key == key {
			return d, true
		}
	}
	return dimension{}, false
}

// matches reports whether p passes this dimension's selected values.
func (d dimension) matches(p catalog.Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	have := d.values(p)
	for _, want := range selected {
		found := false
		for _, value := range have {
			if d.match(value, want) {
				found = true
				break
			}
		}
		if d.all && !found {
			return false
		}
		if !d.all && found {
			return true
		}
	}
	return d.all
}

// sortValues orders values by the preferred order, then numerically or
// alphabetically for anything unranked.
func (d dimension) sortValues(values []string) {
	rank := make(map[string]int, len(d.order))
	for i, v := range d.order {
		rank[strings.ToLower(v)] = i
	}
	sort.SliceStable(values, func(i, j int) bool {
		ri, iRanked := rank[strings.ToLower(values[i])]
		rj, jRanked := rank[strings.ToLower(values[j])]
		switch {
		case iRanked && jRanked:
			return ri < rj
		case iRanked != jRanked:
			return iRanked
		}
		if d.numeric {
			ni, errI := strconv.Atoi(values[i])
			nj, errJ := strconv.Atoi(values[j])
			if errI == nil && errJ == nil {
				return ni < nj
			}
		}
		return strings.ToLower(values[i]) < strings.ToLower(values[j])
	})
}
