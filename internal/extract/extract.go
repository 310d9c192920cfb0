package extract

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

const (
	// DefaultRating is assigned to cards that show no star rating.
	DefaultRating = 4.4

	fallbackRAMGB     = 16
	fallbackStorageGB = 512
	maxPages          = 50
)

var (
	skuPrefixRe = regexp.MustCompile(`(?i)^\s*(?:sku|model|part\s*(?:no|number))\s*[:#.]?\s*`)
	pageParamRe = regexp.MustCompile(`[?&]p=(\d+)\b`)
	modelCutRe  = regexp.MustCompile(`\s*[|,(]`)
)

// Page is the result of parsing one listing page.
type Page struct {
	Products []catalog.Product
	Skipped  int
	MaxPage  int
}

// Extract parses listing HTML into products. Unparseable HTML yields nothing.
func Extract(html string, src Source) []catalog.Product {
	return ExtractPage(html, src).Products
}

// ExtractPage parses listing HTML and also reports skipped cards and the
// highest page number linked from it.
func ExtractPage(html string, src Source) Page {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Page{MaxPage: 1}
	}
	return ExtractDocument(doc, src)
}

// ExtractDocument walks every product card. Cards missing a SKU, price, title
// or link are counted as skipped. Products are unique by SKU, first card wins.
func ExtractDocument(doc *goquery.Document, src Source) Page {
	src = src.withDefaults()
	base, _ := url.Parse(src.URL)

	var (
		products []catalog.Product
		skipped  int
	)
	doc.Find(src.Selectors.Card).Each(func(_ int, card *goquery.Selection) {
		product, ok := parseCard(card, src, base)
		if !ok {
			skipped++
			return
		}
		products = append(products, product)
	})

	return Page{
		Products: catalog.Merge(products),
		Skipped:  skipped,
		MaxPage:  maxPageOf(doc),
	}
}

// MaxPage returns the highest "?p=N" page linked from a listing, 1 when none.
func MaxPage(html string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 1
	}
	return maxPageOf(doc)
}

func maxPageOf(doc *goquery.Document) int {
	highest := 1
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		for _, m := range pageParamRe.FindAllStringSubmatch(href, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
				highest = n
			}
		}
	})
	if highest > maxPages {
		return maxPages
	}
	return highest
}

type card struct {
	title    string
	link     string
	sku      string
	price    int
	features []string
	rating   float64
	image    string
}

func parseCard(sel *goquery.Selection, src Source, base *url.URL) (catalog.Product, bool) {
	c, ok := readCard(sel, src.Selectors, base)
	if !ok {
		return catalog.Product{}, false
	}
	return buildProduct(c, src), true
}

func readCard(sel *goquery.Selection, s Selectors, base *url.URL) (card, bool) {
	c := card{
		title:  normalize.Clean(sel.Find(s.Title).First().Text()),
		sku:    cardSKU(sel, s.SKU),
		rating: DefaultRating,
	}

	if href, ok := sel.Find(s.Link).First().Attr("href"); ok {
		c.link = absolute(base, href)
	}
	if price, ok := cardPrice(sel.Find(s.Price).First()); ok {
		c.price = price
	}
	if c.title == "" || c.link == "" || c.sku == "" || c.price <= 0 {
		return card{}, false
	}

	sel.Find(s.Features).Each(func(_ int, row *goquery.Selection) {
		if text := normalize.Clean(row.Text()); text != "" {
			c.features = append(c.features, text)
		}
	})
	if rating, ok := cardRating(sel.Find(s.Rating).First()); ok {
		c.rating = rating
	}
	c.image = cardImage(sel.Find(s.Image).First(), base)
	return c, true
}

func cardSKU(sel *goquery.Selection, selector string) string {
	for _, attr := range []string{"data-product-sku", "data-sku"} {
		if value, ok := sel.Attr(attr); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	node := sel.Find(selector).First()
	for _, attr := range []string{"data-product-sku", "data-sku"} {
		if value, ok := node.Attr(attr); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return strings.TrimSpace(skuPrefixRe.ReplaceAllString(normalize.Clean(node.Text()), ""))
}

func cardPrice(node *goquery.Selection) (int, bool) {
	if amount, ok := node.Attr("data-price-amount"); ok {
		if value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64); err == nil && value > 0 {
			return int(math.Round(value)), true
		}
	}
	return normalize.Price(node.Text())
}

func cardRating(node *goquery.Selection) (float64, bool) {
	if node.Length() == 0 {
		return 0, false
	}
	if title, ok := node.Attr("title"); ok {
		if rating, ok := normalize.Rating(title); ok {
			return rating, true
		}
	}
	if style, ok := node.Find("span[style]").First().Attr("style"); ok {
		if rating, ok := normalize.Rating(style); ok {
			return rating, true
		}
	}
	return normalize.Rating(node.Text())
}

// cardImage prefers src, then lazy-load attributes, then the first srcset entry.
func cardImage(img *goquery.Selection, base *url.URL) string {
	if img.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"src", "data-src", "data-original"} {
		value, ok := img.Attr(attr)
		value = strings.TrimSpace(value)
		if !ok || value == "" || strings.HasPrefix(value, "data:") {
			continue
		}
		return absolute(base, value)
	}
	if srcset, ok := img.Attr("srcset"); ok {
		first, _, _ := strings.Cut(srcset, ",")
		if fields := strings.Fields(first); len(fields) > 0 {
			return absolute(base, fields[0])
		}
	}
	return ""
}

func absolute(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil || ref.IsAbs() {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

func buildProduct(c card, src Source) catalog.Product {
	texts := append([]string{c.title}, c.features...)

	p := catalog.Product{
		Brand:    src.Brand,
		Series:   normalize.Series(c.title),
		Model:    modelName(c.title),
		SKU:      c.sku,
		Price:    c.price,
		Currency: src.Currency,
		Region:   src.Region,
		URL:      c.link,
		ImageURL: c.image,
		Rating:   c.rating,
		Specs:    catalog.Specs{Details: detailRows(c.features)},
		BuyLinks: []catalog.BuyLink{{Label: src.Brand + " Store", URL: c.link}},
	}
	if p.Series == normalize.OtherSeries {
		p.Series = normalize.Series(strings.Join(texts, " "))
	}

	p.CPUBrand, p.CPUTier = enums.CPUBrandIntel, normalize.DefaultCPUTier
	if brand, tier, ok := firstOf3(texts, normalize.FindCPU); ok {
		p.CPUBrand, p.CPUTier = brand, tier
	}
	if model, ok := firstOf(texts, normalize.FindCPUModel); ok {
		p.CPUModel = model
	}

	p.GPUModel, p.GPUType = normalize.DefaultGPU, enums.GPUTypeDedicated
	if model, ok := gpuFrom(texts); ok {
		p.GPUModel, p.GPUType = model, normalize.GPUKind(model)
	}

	p.RAMGB = fallbackRAMGB
	if gb, ok := firstOf(texts, normalize.RAM); ok {
		p.RAMGB = gb
	}
	p.StorageGB, p.StorageType = fallbackStorageGB, enums.StorageTypeSSD
	if gb, kind, ok := firstOf3(texts, normalize.Storage); ok {
		p.StorageGB, p.StorageType = gb, kind
	}

	fam := familyFor(p.Series, p.GPUType)
	p.ScreenSize = fam.ScreenSize
	if size, ok := firstOf(texts, normalize.ScreenSize); ok {
		p.ScreenSize = size
	}
	p.Resolution = enums.ResolutionFHD
	if res, ok := firstOf(texts, normalize.FindResolution); ok {
		p.Resolution = res
	}
	p.RefreshHz = fam.RefreshHz
	if hz, ok := firstOf(texts, normalize.Refresh); ok {
		p.RefreshHz = hz
	}
	p.Panel = enums.PanelIPS
	if panel, ok := firstOf(texts, normalize.FindPanel); ok {
		p.Panel = panel
	}

	p.WeightKg = fam.WeightKg
	p.BatteryHours = fam.BatteryHours
	p.Ports = append([]string(nil), fam.Ports...)
	p.Features = fam.Features
	p.UseCases = adjustUseCases(fam.UseCases, p.GPUModel, p.GPUType)
	return p
}

// gpuFrom prefers a dedicated model found in any text over integrated graphics.
func gpuFrom(texts []string) (string, bool) {
	integrated := false
	for _, text := range texts {
		model, ok := normalize.FindGPU(text)
		if !ok {
			continue
		}
		if model != normalize.IntegratedGraphics {
			return model, true
		}
		integrated = true
	}
	if integrated {
		return normalize.IntegratedGraphics, true
	}
	return "", false
}

func modelName(title string) string {
	if loc := modelCutRe.FindStringIndex(title); loc != nil && loc[0] > 0 {
		return strings.TrimSpace(title[:loc[0]])
	}
	return title
}

// detailRows keeps "Label: value" feature bullets as spec details.
func detailRows(features []string) map[string]string {
	details := map[string]string{}
	for _, row := range features {
		label, value, ok := strings.Cut(row, ":")
		label, value = strings.TrimSpace(label), strings.TrimSpace(value)
		if !ok || label == "" || value == "" || len(label) > 40 {
			continue
		}
		details[label] = value
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func firstOf[T any](texts []string, find func(string) (T, bool)) (T, bool) {
	for _, text := range texts {
		if value, ok := find(text); ok {
			return value, true
		}
	}
	var zero T
	return zero, false
}

func firstOf3[A, B any](texts []string, find func(string) (A, B, bool)) (A, B, bool) {
	for _, text := range texts {
		if a, b, ok := find(text); ok {
			return a, b, true
		}
	}
	var (
		zeroA A
		zeroB B
	)
	return zeroA, zeroB, false
}
