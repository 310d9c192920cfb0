// Package builder assembles the canonical catalog from live listings, curated
// entries and the previous snapshot, and seeds the catalog store with it.
package builder

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/internal/configurator"
	"github.com/angelmondragon/laptopfinder-backend/internal/extract"
	"github.com/angelmondragon/laptopfinder-backend/internal/snapshot"
	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
	"github.com/angelmondragon/laptopfinder-backend/pkg/fetch"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
	"github.com/angelmondragon/laptopfinder-backend/pkg/metrics"
)

// Fallback reasons recorded on a Report.
const (
	FallbackSnapshot = "snapshot"
	FallbackSeed     = "seed"
)

const defaultMaxDetailFetches = 40

// Options configures a Builder. Every field is optional.
type Options struct {
	Snapshots        snapshot.Store
	Configurator     *configurator.Loader
	Metrics          *metrics.CatalogMetrics
	Logger           *logger.Logger
	MaxDetailFetches int
}

// Builder runs catalog builds one at a time.
type Builder struct {
	fetcher      fetch.Fetcher
	snapshots    snapshot.Store
	configurator *configurator.Loader
	metrics      *metrics.CatalogMetrics
	logg         *logger.Logger
	maxDetail    int

	mu sync.Mutex
}

func New(fetcher fetch.Fetcher, opts Options) *Builder {
	maxDetail := opts.MaxDetailFetches
	if maxDetail < 0 {
		maxDetail = 0
	} else if maxDetail == 0 {
		maxDetail = defaultMaxDetailFetches
	}
	return &Builder{
		fetcher:      fetcher,
		snapshots:    opts.Snapshots,
		configurator: opts.Configurator,
		metrics:      opts.Metrics,
		logg:         opts.Logger,
		maxDetail:    maxDetail,
	}
}

// SourceReport summarizes one listing source.
type SourceReport struct {
	Brand       string `json:"brand"`
	URL         string `json:"url"`
	Pages       int    `json:"pages"`
	FailedPages int    `json:"failed_pages"`
	Records     int    `json:"records"`
	Skipped     int    `json:"skipped_cards"`
}

// Report summarizes a build.
type Report struct {
	Sources       []SourceReport `json:"sources"`
	Scraped       int            `json:"scraped"`
	Curated       int            `json:"curated"`
	Configured    int            `json:"configured"`
	Total         int            `json:"total"`
	Fallback      string         `json:"fallback,omitempty"`
	DetailCached  int            `json:"detail_cached"`
	DetailFetched int            `json:"detail_fetched"`
	SnapshotError string         `json:"snapshot_error,omitempty"`
	Duration      time.Duration  `json:"duration_ns"`
}

// Build scrapes every source in order, enriches battery data, merges curated
// entries with scraped entries first, and overwrites the snapshot. Individual
// page failures are skipped. When nothing was scraped the previous snapshot,
// or the hardcoded seed, stands in for live data.
func (b *Builder) Build(ctx context.Context, sources []extract.Source, curated, previous []catalog.Product) (catalog.Catalog, Report) {
	b.mu.Lock()
	defer b.mu.Unlock()

	started := time.Now()
	report := Report{Curated: len(curated)}
	curated = b.refreshConfigurations(ctx, curated, &report)

	perSource := make([][]catalog.Product, 0, len(sources))
	for _, src := range sources {
		products, sourceReport := b.scrapeSource(ctx, src)
		report.Sources = append(report.Sources, sourceReport)
		perSource = append(perSource, products)
	}
	scraped := catalog.Merge(perSource...)
	report.Scraped = len(scraped)

	var result catalog.Catalog
	if len(scraped) > 0 {
		b.enrichBattery(ctx, scraped, previous, &report)
		result = catalog.Merge(scraped, curated)
	} else {
		base := previous
		report.Fallback = FallbackSnapshot
		if len(base) == 0 {
			base = catalog.FallbackSeed()
			report.Fallback = FallbackSeed
		}
		b.metrics.IncFallback(report.Fallback)
		b.logg.Warn(b.logg.WithField(ctx, "fallback", report.Fallback), "no listing records scraped, using stored catalog")
		result = catalog.Merge(base, curated)
	}
	report.Total = len(result)

	if b.snapshots != nil {
		if err := b.snapshots.Write(ctx, result); err != nil {
			report.SnapshotError = err.Error()
			b.logg.Error(ctx, "write catalog snapshot", err)
		}
	}

	report.Duration = time.Since(started)
	b.metrics.SetRecords("scraped", report.Scraped)
	b.metrics.SetRecords("curated", report.Curated)
	b.metrics.SetRecords("total", report.Total)
	b.metrics.ObserveBuild(report.Duration)
	b.logg.Info(b.logg.WithFields(ctx, map[string]any{
		"scraped":  report.Scraped,
		"curated":  report.Curated,
		"total":    report.Total,
		"fallback": report.Fallback,
	}), "catalog build finished")
	return result, report
}

// Previous reads the last snapshot; an unreadable snapshot counts as empty.
func (b *Builder) Previous(ctx context.Context) []catalog.Product {
	if b.snapshots == nil {
		return nil
	}
	products, err := b.snapshots.Read(ctx)
	if err != nil {
		b.logg.Warn(b.logg.WithField(ctx, "error", err.Error()), "catalog snapshot unreadable, ignoring")
		return nil
	}
	return products
}

func (b *Builder) scrapeSource(ctx context.Context, src extract.Source) ([]catalog.Product, SourceReport) {
	report := SourceReport{Brand: src.Brand, URL: src.URL}
	ctx = b.logg.WithSource(ctx, src.Brand)

	first, ok := b.fetchPage(ctx, src, 1, &report)
	if !ok {
		return nil, report
	}
	lists := [][]catalog.Product{first.Products}
	for page := 2; page <= first.MaxPage; page++ {
		if ctx.Err() != nil {
			break
		}
		next, ok := b.fetchPage(ctx, src, page, &report)
		if !ok {
			continue
		}
		lists = append(lists, next.Products)
	}

	products := catalog.Merge(lists...)
	report.Records = len(products)
	return products, report
}

func (b *Builder) fetchPage(ctx context.Context, src extract.Source, page int, report *SourceReport) (extract.Page, bool) {
	link := PageURL(src.URL, page)
	pageCtx := b.logg.WithFields(ctx, map[string]any{"page": page, "url": link})

	html, err := b.fetcher.Fetch(pageCtx, link)
	if err != nil {
		report.FailedPages++
		b.metrics.IncPage(src.Brand, metrics.ResultError)
		b.logg.Warn(b.logg.WithField(pageCtx, "error", err.Error()), "listing page fetch failed, skipping")
		return extract.Page{}, false
	}

	parsed := extract.ExtractPage(html, src)
	report.Pages++
	report.Skipped += parsed.Skipped
	if len(parsed.Products) == 0 {
		b.metrics.IncPage(src.Brand, metrics.ResultEmpty)
		b.logg.Warn(pageCtx, "listing page had no product cards")
	} else {
		b.metrics.IncPage(src.Brand, metrics.ResultOK)
	}
	return parsed, true
}

// enrichBattery fills battery capacity from the previous snapshot first and
// only fetches detail pages for SKUs it has never seen, up to maxDetail.
func (b *Builder) enrichBattery(ctx context.Context, products catalog.Catalog, previous []catalog.Product, report *Report) {
	known := catalog.Catalog(previous).BySKU()
	fetched := 0
	for i := range products {
		p := &products[i]
		if hasBattery(*p) {
			continue
		}
		if prev, ok := known[catalog.SKUKey(p.SKU)]; ok && hasBattery(prev) {
			p.BatteryWh, p.BatteryType = prev.BatteryWh, prev.BatteryType
			report.DetailCached++
			b.metrics.IncDetail("cached")
			continue
		}
		if fetched >= b.maxDetail || p.URL == "" || ctx.Err() != nil {
			b.metrics.IncDetail("skipped")
			continue
		}

		fetched++
		detailCtx := b.logg.WithSKU(ctx, p.SKU)
		html, err := b.fetcher.Fetch(detailCtx, p.URL)
		if err != nil {
			b.metrics.IncDetail("failed")
			b.logg.Warn(b.logg.WithField(detailCtx, "error", err.Error()), "product detail fetch failed")
			continue
		}
		battery, ok := extract.ExtractBattery(html)
		if !ok {
			b.metrics.IncDetail("failed")
			continue
		}
		p.BatteryWh, p.BatteryType = battery.Wh, battery.Text
		report.DetailFetched++
		b.metrics.IncDetail("fetched")
	}
}

// refreshConfigurations replaces bundled configuration matrices with live
// ones merged across every SKU of the product's chassis. Pages that fail or
// yield nothing keep the bundled matrix.
func (b *Builder) refreshConfigurations(ctx context.Context, curated []catalog.Product, report *Report) []catalog.Product {
	if b.configurator == nil || len(curated) == 0 {
		return curated
	}
	out := make([]catalog.Product, len(curated))
	copy(out, curated)
	for i := range out {
		if ctx.Err() != nil {
			break
		}
		p := &out[i]
		categories, err := b.configurator.LoadAll(ctx, catalog.ChassisSKUs(p.SKU), p.Price)
		if err != nil {
			b.logg.Warn(b.logg.WithFields(ctx, map[string]any{"sku": p.SKU, "error": err.Error()}), "configurator page unavailable, keeping bundled matrix")
			continue
		}
		if len(categories) == 0 {
			continue
		}
		p.Specs.Configuration = categories
		report.Configured++
	}
	return out
}

func hasBattery(p catalog.Product) bool {
	return p.BatteryWh > 0 || p.BatteryType != ""
}

// PageURL sets the "p" query parameter for pages after the first.
func PageURL(base string, page int) string {
	if page <= 1 {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("p", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

// Sources turns configured "Brand=URL" pairs into listing sources.
func Sources(cfg config.CatalogConfig) []extract.Source {
	pairs := cfg.SourcePairs()
	sources := make([]extract.Source, 0, len(pairs))
	for _, pair := range pairs {
		sources = append(sources, extract.NewSource(pair[0], pair[1]))
	}
	return sources
}

// ConfiguratorLoader returns nil when no configurator page is configured.
func ConfiguratorLoader(cfg config.CatalogConfig, fetcher fetch.Fetcher, logg *logger.Logger) *configurator.Loader {
	if cfg.ConfiguratorURL == "" {
		return nil
	}
	return configurator.NewLoader(fetcher, cfg.ConfiguratorURL, logg)
}
