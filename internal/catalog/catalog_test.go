package catalog

import (
	"testing"

	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

func TestMergeFirstSourceWins(t *testing.T) {
	scraped := []Product{
		{SKU: "A1", Model: "scraped A1", Price: 100},
		{SKU: "B2", Model: "scraped B2", Price: 200},
		{SKU: "a1", Model: "scraped dup", Price: 999},
	}
	curated := []Product{
		{SKU: "B2", Model: "curated B2", Price: 250},
		{SKU: "C3", Model: "curated C3", Price: 300},
		{SKU: "  ", Model: "no sku"},
	}

	merged := Merge(scraped, curated)
	if len(merged) != 3 {
		t.Fatalf("expected 3 products, got %d", len(merged))
	}
	want := []string{"scraped A1", "scraped B2", "curated C3"}
	for i, model := range want {
		if merged[i].Model != model {
			t.Fatalf("position %d: expected %q, got %q", i, model, merged[i].Model)
		}
	}
}

func TestFallbackSeedIsNormalized(t *testing.T) {
	seed := FallbackSeed()
	if len(seed) != 6 {
		t.Fatalf("expected 6 seed products, got %d", len(seed))
	}
	assertCanonical(t, seed)

	legion := seed[1]
	if legion.Resolution != enums.Resolution2K {
		t.Fatalf("expected WQXGA to canonicalize to 2K, got %q", legion.Resolution)
	}
	if legion.GPUModel != "RTX 4060" || legion.GPUType != enums.GPUTypeDedicated {
		t.Fatalf("unexpected legion gpu %q/%q", legion.GPUModel, legion.GPUType)
	}
	if legion.Series != "Legion" {
		t.Fatalf("expected Legion series, got %q", legion.Series)
	}

	xps := seed[4]
	if xps.Panel != enums.PanelOLED || xps.Resolution != enums.Resolution3K {
		t.Fatalf("expected 3K OLED for XPS, got %q %q", xps.Resolution, xps.Panel)
	}
}

func TestCuratedCarriesConfiguration(t *testing.T) {
	curated := Curated()
	assertCanonical(t, curated)

	var legion Product
	for _, p := range curated {
		if p.SKU == "83F5CTO1WW" {
			legion = p
		}
	}
	if legion.Price != 309999 {
		t.Fatalf("expected curated legion at 309999, got %d", legion.Price)
	}
	if len(legion.Specs.Configuration) != 3 {
		t.Fatalf("expected 3 configuration categories, got %d", len(legion.Specs.Configuration))
	}
	storage := legion.Specs.Configuration[1]
	if len(storage.Options) != 2 {
		t.Fatalf("expected duplicate storage options to merge, got %+v", storage.Options)
	}
	if !storage.Options[0].Included || storage.Options[0].PriceDelta != 0 {
		t.Fatalf("expected included storage option first with zero delta, got %+v", storage.Options[0])
	}
	if storage.Options[1].PriceDelta != 32000 {
		t.Fatalf("expected RAID upgrade delta 32000, got %d", storage.Options[1].PriceDelta)
	}
}

func TestCuratedAndSeedSKUsAreUnique(t *testing.T) {
	all := append(FallbackSeed(), Curated()...)
	if got := len(Merge(all)); got != len(all) {
		t.Fatalf("expected %d unique SKUs, got %d", len(all), got)
	}
}

func TestProductPresentation(t *testing.T) {
	p := Product{
		Brand:       "HP",
		Model:       "OMEN 16",
		CPUBrand:    enums.CPUBrandIntel,
		CPUTier:     "i7",
		StorageGB:   1024,
		StorageType: enums.StorageTypeSSD,
		ScreenSize:  16.1,
		Resolution:  enums.Resolution2K,
		RefreshHz:   240,
		Panel:       enums.PanelIPS,
		UseCases:    []enums.UseCase{enums.UseCaseGaming},
		Ports:       []string{"USB-C", "HDMI"},
	}
	if got := p.DisplayName(); got != "HP OMEN 16" {
		t.Fatalf("unexpected display name %q", got)
	}
	if got := (Product{Brand: "Apple", Model: "Apple MacBook Air"}).DisplayName(); got != "Apple MacBook Air" {
		t.Fatalf("brand should not be repeated, got %q", got)
	}
	if got := p.CPUDisplay(); got != "Intel Core i7" {
		t.Fatalf("unexpected cpu display %q", got)
	}
	if got := p.StorageSummary(); got != "1TB SSD" {
		t.Fatalf("unexpected storage summary %q", got)
	}
	if got := p.DisplaySummary(); got != `16.1" 2K 240Hz IPS` {
		t.Fatalf("unexpected display summary %q", got)
	}
	if !p.HasUseCase(enums.UseCaseGaming) || p.HasUseCase(enums.UseCaseCreator) {
		t.Fatal("unexpected use-case membership")
	}
	if !p.HasPorts([]string{"hdmi"}) || p.HasPorts([]string{"HDMI", "RJ45"}) {
		t.Fatal("port matching should require every selected port")
	}
}

func assertCanonical(t *testing.T, products []Product) {
	t.Helper()
	for _, p := range products {
		if p.Price <= 0 || p.RAMGB <= 0 || p.StorageGB <= 0 || p.ScreenSize <= 0 || p.RefreshHz <= 0 {
			t.Fatalf("%s: expected positive numeric fields, got %+v", p.SKU, p)
		}
		if !p.Resolution.IsValid() || p.Resolution == enums.ResolutionQHD {
			t.Fatalf("%s: non-canonical resolution %q", p.SKU, p.Resolution)
		}
		if !p.Panel.IsValid() {
			t.Fatalf("%s: non-canonical panel %q", p.SKU, p.Panel)
		}
		if p.Series == "" {
			t.Fatalf("%s: missing series", p.SKU)
		}
		if model, _ := normalize.GPU(p.GPUModel); model != p.GPUModel {
			t.Fatalf("%s: gpu %q is not canonical", p.SKU, p.GPUModel)
		}
	}
}

func TestChassisSKUs(t *testing.T) {
	got := ChassisSKUs(" 83gs00fcin ")
	if len(got) != 2 || got[0] != " 83gs00fcin " || got[1] != "83GS00JXIN" {
		t.Fatalf("expected the sku followed by its chassis sibling, got %v", got)
	}
	if got := ChassisSKUs("UNKNOWN-1"); len(got) != 1 || got[0] != "UNKNOWN-1" {
		t.Fatalf("unknown sku should stand alone, got %v", got)
	}
}
