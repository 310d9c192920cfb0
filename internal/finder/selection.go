package finder

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
	"github.com/angelmondragon/laptopfinder-backend/pkg/pagination"
)

// Toggles are the one-directional feature filters: true requires the flag,
// false never excludes.
type Toggles struct {
	SRGB100         bool `json:"srgb_100,omitempty"`
	DCIP3           bool `json:"dci_p3,omitempty"`
	GoodCooling     bool `json:"good_cooling,omitempty"`
	RAMUpgradable   bool `json:"ram_upgradable,omitempty"`
	ExtraSSDSlot    bool `json:"extra_ssd_slot,omitempty"`
	BacklitKeyboard bool `json:"backlit_keyboard,omitempty"`
}

type toggle struct {
	key     string
	label   string
	ptr     func(t *Toggles) *bool
	enabled func(f catalog.Features) bool
}

var toggles = []toggle{
	{"srgb_100", "100% sRGB", func(t *Toggles) *bool { return &t.SRGB100 }, func(f catalog.Features) bool { return f.SRGB100 }},
	{"dci_p3", "DCI-P3", func(t *Toggles) *bool { return &t.DCIP3 }, func(f catalog.Features) bool { return f.DCIP3 }},
	{"good_cooling", "Good cooling", func(t *Toggles) *bool { return &t.GoodCooling }, func(f catalog.Features) bool { return f.GoodCooling }},
	{"ram_upgradable", "Upgradable RAM", func(t *Toggles) *bool { return &t.RAMUpgradable }, func(f catalog.Features) bool { return f.RAMUpgradable }},
	{"extra_ssd_slot", "Extra SSD slot", func(t *Toggles) *bool { return &t.ExtraSSDSlot }, func(f catalog.Features) bool { return f.ExtraSSDSlot }},
	{"backlit_keyboard", "Backlit keyboard", func(t *Toggles) *bool { return &t.BacklitKeyboard }, func(f catalog.Features) bool { return f.BacklitKeyboard }},
}

// Selection is one finder query. Zero values mean "no constraint".
type Selection struct {
	Query    string        `json:"q,omitempty"`
	UseCase  enums.UseCase `json:"use_case,omitempty"`
	Brands   []string      `json:"brand,omitempty"`
	Series   []string      `json:"series,omitempty"`
	MinPrice int           `json:"min_price,omitempty"`
	MaxPrice int           `json:"max_price,omitempty"`

	CPUBrand     string   `json:"cpu_brand,omitempty"`
	CPUTiers     []string `json:"cpu_tier,omitempty"`
	RAM          []int    `json:"ram,omitempty"`
	StorageTypes []string `json:"storage_type,omitempty"`
	StorageMin   int      `json:"storage_min,omitempty"`
	GPUType      string   `json:"gpu_type,omitempty"`
	GPUModels    []string `json:"gpu,omitempty"`

	ScreenBuckets  []string `json:"screen,omitempty"`
	Resolutions    []string `json:"resolution,omitempty"`
	RefreshBuckets []string `json:"refresh,omitempty"`
	Panels         []string `json:"panel,omitempty"`
	WeightBuckets  []string `json:"weight,omitempty"`
	BatteryBuckets []string `json:"battery,omitempty"`
	Ports          []string `json:"port,omitempty"`
	Toggles        Toggles  `json:"toggles"`

	Sort     enums.SortKey `json:"sort"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// ParseSelection reads query parameters leniently. Set-valued parameters may
// repeat or carry comma-separated values; malformed numbers are ignored.
func ParseSelection(values url.Values) Selection {
	s := Selection{
		Query:      strings.TrimSpace(values.Get("q")),
		MinPrice:   atoi(values.Get("min_price")),
		MaxPrice:   atoi(values.Get("max_price")),
		StorageMin: atoi(values.Get("storage_min")),
		Sort:       enums.ParseSortKey(values.Get("sort")),
		Page:       atoi(values.Get("page")),
		PageSize:   atoi(values.Get("page_size")),
	}
	if useCase, err := enums.ParseUseCase(values.Get("use_case")); err == nil {
		s.UseCase = useCase
	}
	for _, d := range dimensions {
		raw := splitValues(values[d.key])
		canonical := make([]string, 0, len(raw))
		for _, value := range raw {
			if value = d.canon(value); value != "" {
				canonical = append(canonical, value)
			}
		}
		d.set(&s, canonical)
	}
	for _, t := range toggles {
		*t.ptr(&s.Toggles) = truthy(values.Get(t.key))
	}
	return s
}

// Normalize clamps ranges and paging and reduces every set to canonical,
// de-duplicated values known to the vocabulary.
func (s Selection) Normalize(vocab Vocabulary) Selection {
	out := s
	out.Query = strings.TrimSpace(s.Query)
	if !out.UseCase.IsValid() {
		out.UseCase = ""
	}
	out.MinPrice, out.MaxPrice = nonNegative(s.MinPrice), nonNegative(s.MaxPrice)
	if out.MaxPrice > 0 && out.MinPrice > out.MaxPrice {
		out.MinPrice, out.MaxPrice = out.MaxPrice, out.MinPrice
	}
	out.StorageMin = nonNegative(s.StorageMin)
	out.Sort = enums.ParseSortKey(string(s.Sort))
	if out.Page < 1 {
		out.Page = 1
	}
	out.PageSize = pagination.NormalizePageSize(s.PageSize)

	for _, d := range dimensions {
		d.set(&out, vocab.filter(d, d.get(&s)))
	}
	return out
}

// Values encodes the selection back to query parameters. Defaults are
// omitted so equal selections encode equally.
func (s Selection) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if s.UseCase != "" {
		v.Set("use_case", string(s.UseCase))
	}
	setInt := func(key string, n int) {
		if n > 0 {
			v.Set(key, strconv.Itoa(n))
		}
	}
	setInt("min_price", s.MinPrice)
	setInt("max_price", s.MaxPrice)
	setInt("storage_min", s.StorageMin)
	for _, d := range dimensions {
		for _, value := range d.get(&s) {
			v.Add(d.key, value)
		}
	}
	for _, t := range toggles {
		if *t.ptr(&s.Toggles) {
			v.Set(t.key, "1")
		}
	}
	if s.Sort != "" && s.Sort != enums.SortRecommended {
		v.Set("sort", string(s.Sort))
	}
	if s.Page > 1 {
		v.Set("page", strconv.Itoa(s.Page))
	}
	if s.PageSize != 0 && s.PageSize != pagination.DefaultPageSize {
		v.Set("page_size", strconv.Itoa(s.PageSize))
	}
	return v
}

// URL renders the selection as a relative query string.
func (s Selection) URL() string {
	encoded := s.Values().Encode()
	if encoded == "" {
		return "?"
	}
	return "?" + encoded
}

func splitValues(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func atoi(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func truthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
