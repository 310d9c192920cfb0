// Package configurator normalizes the per-SKU customization matrices published
// by vendor configurators (memory, storage, display upgrades and so on).
package configurator

// Option is one selectable choice inside a category.
type Option struct {
	Name       string   `json:"name"`
	Details    string   `json:"details"`
	PriceNote  string   `json:"price_note"`
	PriceDelta int      `json:"price_delta"`
	Included   bool     `json:"included"`
	Codes      []string `json:"codes,omitempty"`
}

// Category groups the options for one component, e.g. "Memory".
type Category struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// RawOption is an option as scraped, before dedup and pricing.
type RawOption struct {
	Name      string
	Details   string
	PriceNote string
	Included  bool
	Codes     []string
}

type RawCategory struct {
	Name    string
	Options []RawOption
}

// IncludedOption returns the selected option of the category.
func (c Category) IncludedOption() (Option, bool) {
	for _, option := range c.Options {
		if option.Included {
			return option, true
		}
	}
	return Option{}, false
}
