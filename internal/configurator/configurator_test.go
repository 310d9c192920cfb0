package configurator

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/laptopfinder-backend/pkg/fetch"
)

func TestKey(t *testing.T) {
	cases := map[string]string{
		"16GB DDR5":                 "16gb ddr5",
		"16 GB DDR5 (Dual-Channel)": "16gb ddr5",
		"  16gb   DDR5™ ":           "16gb ddr5",
		"Windows® 11 Home":          "windows 11 home",
		"1 TB SSD M.2 2280 PCIe":    "1tb ssd m.2 2280 pcie",
	}
	for raw, want := range cases {
		if got := Key(raw); got != want {
			t.Fatalf("Key(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeMergesNearDuplicates(t *testing.T) {
	raw := []RawCategory{{
		Name: "Memory",
		Options: []RawOption{
			{Name: "16GB DDR5", PriceNote: "+₹16,500", Codes: []string{"MEM16A"}},
			{Name: "16 GB DDR5 (Dual-Channel)", Included: true, Details: "2 x 8GB SO-DIMM", Codes: []string{"MEM16B"}},
		},
	}}

	got := Normalize(raw)
	if len(got) != 1 || got[0].Name != "Memory" {
		t.Fatalf("expected one Memory category, got %+v", got)
	}
	if len(got[0].Options) != 1 {
		t.Fatalf("expected one merged option, got %+v", got[0].Options)
	}
	option := got[0].Options[0]
	if !option.Included {
		t.Fatal("expected merged option to be included")
	}
	if option.PriceDelta != 0 {
		t.Fatalf("expected included price delta 0, got %d", option.PriceDelta)
	}
	if option.PriceNote != "+₹16,500" {
		t.Fatalf("expected first non-empty price note, got %q", option.PriceNote)
	}
	if option.Details != "2 x 8GB SO-DIMM" {
		t.Fatalf("expected longer details to win, got %q", option.Details)
	}
	if len(option.Codes) != 2 {
		t.Fatalf("expected codes union, got %v", option.Codes)
	}
}

func TestNormalizeOrdersAndPricesRelativeToIncluded(t *testing.T) {
	raw := []RawCategory{{
		Name: "Storage",
		Options: []RawOption{
			{Name: "2TB SSD", PriceNote: "+₹18,000"},
			{Name: "1TB SSD", PriceNote: "+₹6,000", Included: true},
			{Name: "512GB SSD", PriceNote: "-₹4,000"},
			{Name: "1TB SSD Gen4", Included: true},
		},
	}}

	options := Normalize(raw)[0].Options
	if options[0].Name != "1TB SSD" || !options[0].Included {
		t.Fatalf("expected included option first, got %+v", options[0])
	}
	included := 0
	for _, option := range options {
		if option.Included {
			included++
		}
	}
	if included != 1 {
		t.Fatalf("expected exactly one included option, got %d", included)
	}

	deltas := map[string]int{}
	for _, option := range options {
		deltas[option.Name] = option.PriceDelta
	}
	if deltas["2TB SSD"] != 12000 {
		t.Fatalf("expected 2TB delta 12000, got %d", deltas["2TB SSD"])
	}
	if deltas["512GB SSD"] != -10000 {
		t.Fatalf("expected 512GB delta -10000, got %d", deltas["512GB SSD"])
	}
}

func TestNormalizeForcesFirstIncluded(t *testing.T) {
	raw := []RawCategory{{
		Name: "Display",
		Options: []RawOption{
			{Name: "WQXGA OLED", PriceNote: "+₹9,000"},
			{Name: "WQXGA IPS"},
		},
	}}
	options := Normalize(raw)[0].Options
	if options[0].Name != "WQXGA IPS" || !options[0].Included {
		t.Fatalf("expected alphabetical first option to be forced included, got %+v", options)
	}
	if options[1].PriceDelta != 9000 {
		t.Fatalf("expected OLED delta 9000, got %d", options[1].PriceDelta)
	}
}

func TestNormalizeWithBaseUsesAbsoluteNotes(t *testing.T) {
	raw := []RawCategory{{
		Name: "Processor",
		Options: []RawOption{
			{Name: "Ryzen 7", Included: true},
			{Name: "Ryzen 9", PriceNote: "₹1,45,990"},
		},
	}}
	options := NormalizeWithBase(raw, 129990)[0].Options
	if options[1].PriceDelta != 16000 {
		t.Fatalf("expected absolute note priced against base, got %d", options[1].PriceDelta)
	}
}

func TestPriceDelta(t *testing.T) {
	cases := map[string]int{
		"+₹16,500":    16500,
		"-₹2,000":     -2000,
		"− ₹1,250.50": -1251,
		"+Rs. 999":    999,
		"₹1,20,000":   0,
		"included":    0,
	}
	for note, want := range cases {
		if got := PriceDelta(note); got != want {
			t.Fatalf("PriceDelta(%q) = %d, want %d", note, got, want)
		}
	}
}

func TestMergeRaw(t *testing.T) {
	a := []RawCategory{{Name: "Memory", Options: []RawOption{{Name: "16GB"}}}}
	b := []RawCategory{
		{Name: "memory", Options: []RawOption{{Name: "32GB"}}},
		{Name: "Storage", Options: []RawOption{{Name: "1TB"}}},
	}
	merged := MergeRaw(a, b)
	if len(merged) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(merged))
	}
	if merged[0].Name != "Memory" || len(merged[0].Options) != 2 {
		t.Fatalf("expected memory options concatenated, got %+v", merged[0])
	}
}

const configuratorHTML = `
<div class="configurator">
  <section class="configurator-category" data-config-category="Memory">
    <ul>
      <li class="configurator-option is-selected" data-code="MEM16">
        <span class="configurator-option__name">16 GB DDR5 (Dual-Channel)</span>
        <span class="configurator-option__details">5600MHz</span>
      </li>
      <li class="configurator-option" data-code="MEM32">
        <span class="configurator-option__name">32GB DDR5</span>
        <span class="configurator-option__price">+₹14,000</span>
      </li>
    </ul>
  </section>
  <section class="configurator-category">
    <h3 class="configurator-category__title">Storage</h3>
    <ul>
      <li class="configurator-option"><span class="configurator-option__name">1TB SSD</span></li>
    </ul>
  </section>
</div>`

func TestParseHTML(t *testing.T) {
	raw, err := ParseHTML(configuratorHTML, DefaultSelectors)
	if err != nil {
		t.Fatalf("ParseHTML returned error: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(raw))
	}
	if raw[0].Name != "Memory" || len(raw[0].Options) != 2 {
		t.Fatalf("unexpected memory category %+v", raw[0])
	}
	if !raw[0].Options[0].Included || raw[0].Options[0].Codes[0] != "MEM16" {
		t.Fatalf("expected selected option with code, got %+v", raw[0].Options[0])
	}
	if raw[1].Name != "Storage" {
		t.Fatalf("expected title fallback, got %q", raw[1].Name)
	}
}

func TestLoaderLoadAllSkipsFailedPages(t *testing.T) {
	f := fetch.FetcherFunc(func(ctx context.Context, url string) (string, error) {
		if url == "https://vendor.test/configure/BAD" {
			return "", errors.New("timeout")
		}
		return configuratorHTML, nil
	})
	loader := NewLoader(f, "https://vendor.test/configure/{sku}", nil)

	categories, err := loader.LoadAll(context.Background(), []string{"GOOD", "BAD"}, 0)
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	memory := categories[0]
	included, ok := memory.IncludedOption()
	if !ok || included.Name != "16 GB DDR5 (Dual-Channel)" {
		t.Fatalf("unexpected included option %+v", included)
	}
	if memory.Options[1].PriceDelta != 14000 {
		t.Fatalf("expected 32GB delta 14000, got %d", memory.Options[1].PriceDelta)
	}
}

func TestLoaderLoadAllFailsWhenEveryPageFails(t *testing.T) {
	f := fetch.FetcherFunc(func(context.Context, string) (string, error) {
		return "", errors.New("timeout")
	})
	loader := NewLoader(f, "https://vendor.test/configure/{sku}", nil)

	if _, err := loader.LoadAll(context.Background(), []string{"A", "B"}, 0); err == nil {
		t.Fatal("expected an error when no page could be read")
	}
	if _, err := loader.LoadAll(context.Background(), nil, 0); err == nil {
		t.Fatal("expected an error without skus")
	}
}
