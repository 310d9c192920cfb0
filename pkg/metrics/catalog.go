package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Page fetch outcomes.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultEmpty = "empty"
)

// CatalogMetrics instruments catalog builds.
type CatalogMetrics struct {
	pages    *prometheus.CounterVec
	details  *prometheus.CounterVec
	records  *prometheus.GaugeVec
	fallback *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewCatalogMetrics registers the catalog build metrics on the provided registerer.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	pages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "pages_fetched_total",
		Help:      "Listing pages fetched during catalog builds by source and result.",
	}, []string{"source", "result"})
	details := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "detail_lookups_total",
		Help:      "Battery enrichment lookups by outcome (cached, fetched, failed, skipped).",
	}, []string{"outcome"})
	records := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "build_records",
		Help:      "Products in the last catalog build by origin.",
	}, []string{"origin"})
	fallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "build_fallback_total",
		Help:      "Catalog builds that fell back to stored data because scraping produced nothing.",
	}, []string{"reason"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "build_duration_seconds",
		Help:      "Wall time of catalog builds.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
	})
	reg.MustRegister(pages, details, records, fallback, duration)
	return &CatalogMetrics{
		pages:    pages,
		details:  details,
		records:  records,
		fallback: fallback,
		duration: duration,
	}
}

// IncPage counts one listing page fetch.
func (c *CatalogMetrics) IncPage(source, result string) {
	if c == nil || c.pages == nil {
		return
	}
	c.pages.WithLabelValues(normalizeLabel(source), normalizeLabel(result)).Inc()
}

func (c *CatalogMetrics) IncDetail(outcome string) {
	if c == nil || c.details == nil {
		return
	}
	c.details.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// SetRecords publishes the record count of the last build for one origin.
func (c *CatalogMetrics) SetRecords(origin string, count int) {
	if c == nil || c.records == nil {
		return
	}
	c.records.WithLabelValues(normalizeLabel(origin)).Set(float64(count))
}

func (c *CatalogMetrics) IncFallback(reason string) {
	if c == nil || c.fallback == nil {
		return
	}
	c.fallback.WithLabelValues(normalizeLabel(reason)).Inc()
}

func (c *CatalogMetrics) ObserveBuild(duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.Observe(duration.Seconds())
}
