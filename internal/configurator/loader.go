package configurator

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/angelmondragon/laptopfinder-backend/pkg/fetch"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

// Selectors locate the configurator matrix inside a page.
type Selectors struct {
	Category      string
	CategoryTitle string
	Option        string
	OptionName    string
	OptionDetails string
	OptionPrice   string
	SelectedClass string
	CodeAttr      string
}

// DefaultSelectors match the vendor configurator markup.
var DefaultSelectors = Selectors{
	Category:      ".configurator-category, [data-config-category]",
	CategoryTitle: ".configurator-category__title, h3",
	Option:        ".configurator-option, [data-config-option]",
	OptionName:    ".configurator-option__name",
	OptionDetails: ".configurator-option__details",
	OptionPrice:   ".configurator-option__price",
	SelectedClass: "is-selected",
	CodeAttr:      "data-code",
}

// Loader fetches per-SKU configurator pages.
type Loader struct {
	fetcher   fetch.Fetcher
	urlFormat string
	selectors Selectors
	logg      *logger.Logger
}

// NewLoader builds a loader; urlFormat contains "{sku}".
func NewLoader(fetcher fetch.Fetcher, urlFormat string, logg *logger.Logger) *Loader {
	return &Loader{fetcher: fetcher, urlFormat: urlFormat, selectors: DefaultSelectors, logg: logg}
}

// URL expands the page address for a SKU.
func (l *Loader) URL(sku string) string {
	return strings.ReplaceAll(l.urlFormat, "{sku}", sku)
}

// LoadAll fetches the configurator page of every SKU sharing one chassis and
// merges them into a single matrix priced against basePrice. Pages that fail
// are skipped; an error is returned only when none could be read.
func (l *Loader) LoadAll(ctx context.Context, skus []string, basePrice int) ([]Category, error) {
	if len(skus) == 0 {
		return nil, fmt.Errorf("load configurator: no skus")
	}
	pages := make([][]RawCategory, 0, len(skus))
	var lastErr error
	for _, sku := range skus {
		skuCtx := l.logg.WithSKU(ctx, sku)
		doc, err := fetch.Document(skuCtx, l.fetcher, l.URL(sku))
		if err != nil {
			lastErr = fmt.Errorf("load configurator for %s: %w", sku, err)
			l.logg.Warn(l.logg.WithField(skuCtx, "error", err.Error()), "configurator fetch failed")
			continue
		}
		raw := ParseDocument(doc, l.selectors)
		if len(raw) == 0 {
			l.logg.Warn(skuCtx, "configurator page has no categories")
		}
		pages = append(pages, raw)
	}
	if len(pages) == 0 {
		return nil, lastErr
	}
	return NormalizeWithBase(MergeRaw(pages...), basePrice), nil
}

// ParseHTML reads raw categories from configurator markup.
func ParseHTML(html string, sel Selectors) ([]RawCategory, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return ParseDocument(doc, sel), nil
}

func ParseDocument(doc *goquery.Document, sel Selectors) []RawCategory {
	var out []RawCategory
	doc.Find(sel.Category).Each(func(_ int, cat *goquery.Selection) {
		name, _ := cat.Attr("data-config-category")
		if strings.TrimSpace(name) == "" {
			name = cat.Find(sel.CategoryTitle).First().Text()
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}

		rc := RawCategory{Name: name}
		cat.Find(sel.Option).Each(func(_ int, opt *goquery.Selection) {
			optionName := strings.TrimSpace(opt.Find(sel.OptionName).Text())
			if optionName == "" {
				return
			}
			ro := RawOption{
				Name:      optionName,
				Details:   strings.TrimSpace(opt.Find(sel.OptionDetails).Text()),
				PriceNote: strings.TrimSpace(opt.Find(sel.OptionPrice).Text()),
				Included:  opt.HasClass(sel.SelectedClass),
			}
			if code, ok := opt.Attr(sel.CodeAttr); ok && strings.TrimSpace(code) != "" {
				ro.Codes = []string{strings.TrimSpace(code)}
			}
			rc.Options = append(rc.Options, ro)
		})
		out = append(out, rc)
	})
	return out
}
