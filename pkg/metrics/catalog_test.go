package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCatalogMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewCatalogMetrics(reg)
	metrics.IncPage("HP", ResultOK)
	metrics.IncPage("HP", ResultOK)
	metrics.IncPage("Lenovo", ResultError)
	metrics.IncFallback("snapshot")
	metrics.SetRecords("scraped", 42)
	metrics.IncDetail("cached")
	metrics.ObserveBuild(3 * time.Second)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "laptopfinder_catalog_pages_fetched_total", "source", "HP"); err != nil {
		t.Fatalf("fetch pages: %v", err)
	} else if got != 2 {
		t.Fatalf("expected 2 HP pages, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "laptopfinder_catalog_build_fallback_total", "reason", "snapshot"); err != nil {
		t.Fatalf("fetch fallback: %v", err)
	} else if got != 1 {
		t.Fatalf("expected fallback=1, got %f", got)
	}

	mf := findMetricFamily(mfs, "laptopfinder_catalog_build_records")
	if mf == nil || len(mf.GetMetric()) != 1 || mf.GetMetric()[0].GetGauge().GetValue() != 42 {
		t.Fatalf("expected build_records gauge of 42, got %v", mf)
	}
}

func TestNilCatalogMetricsAreNoops(t *testing.T) {
	var metrics *CatalogMetrics
	metrics.IncPage("HP", ResultOK)
	metrics.IncFallback("seed")
	metrics.SetRecords("curated", 1)
	metrics.ObserveBuild(time.Second)

	NewCatalogMetrics(nil).IncDetail("fetched")
}
