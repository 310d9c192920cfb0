package extract

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

const listingURL = "https://www.hp.com/in-en/shop/laptops.html"

func readFixture(t *testing.T, name string) string {
	t.Helper()
	buf, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return string(buf)
}

func TestExtractPageSkipsIncompleteAndDuplicateCards(t *testing.T) {
	page := ExtractPage(readFixture(t, "hp_listing.html"), NewSource("HP", listingURL))

	var skus []string
	for _, p := range page.Products {
		skus = append(skus, p.SKU)
	}
	if want := []string{"B3LM2PA", "A1B2C3PA", "PAV14"}; !reflect.DeepEqual(skus, want) {
		t.Fatalf("expected skus %v, got %v", want, skus)
	}
	if page.Skipped != 1 {
		t.Fatalf("expected one card without a price to be skipped, got %d", page.Skipped)
	}
	if page.MaxPage != 3 {
		t.Fatalf("expected max page 3, got %d", page.MaxPage)
	}
	if page.Products[0].Price != 289999 {
		t.Fatalf("duplicate sku must not replace the first card, got price %d", page.Products[0].Price)
	}
}

func TestExtractDerivesFieldsFromTitleAndFeatures(t *testing.T) {
	products := Extract(readFixture(t, "hp_listing.html"), NewSource("HP", listingURL))
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	omen := products[0]
	if omen.Series != "OMEN MAX" || omen.Brand != "HP" || omen.Currency != "INR" || omen.Region != "IN" {
		t.Fatalf("unexpected identity fields: %+v", omen)
	}
	if omen.CPUBrand != enums.CPUBrandIntel || omen.CPUTier != "Ultra 9" || omen.CPUModel != "Intel Core Ultra 9 275HX" {
		t.Fatalf("unexpected cpu: %s %s %q", omen.CPUBrand, omen.CPUTier, omen.CPUModel)
	}
	if omen.GPUModel != "RTX 5080" || omen.GPUType != enums.GPUTypeDedicated {
		t.Fatalf("unexpected gpu: %s %s", omen.GPUModel, omen.GPUType)
	}
	if omen.RAMGB != 32 || omen.StorageGB != 1024 || omen.StorageType != enums.StorageTypeSSD {
		t.Fatalf("unexpected memory/storage: %d GB, %d GB %s", omen.RAMGB, omen.StorageGB, omen.StorageType)
	}
	if omen.ScreenSize != 16 || omen.Resolution != enums.Resolution2K || omen.RefreshHz != 240 || omen.Panel != enums.PanelIPS {
		t.Fatalf("unexpected display: %s", omen.DisplaySummary())
	}
	if omen.Rating != 4.5 {
		t.Fatalf("expected rating 4.5 from 90%%, got %v", omen.Rating)
	}
	if omen.ImageURL != "https://www.hp.com/media/catalog/omen-max.png" {
		t.Fatalf("expected lazy-load image to be absolutized, got %q", omen.ImageURL)
	}
	if want := []enums.UseCase{enums.UseCaseGaming, enums.UseCaseCreator}; !reflect.DeepEqual(omen.UseCases, want) {
		t.Fatalf("expected use cases %v, got %v", want, omen.UseCases)
	}
	if omen.WeightKg != 2.7 || !omen.Features.GoodCooling {
		t.Fatalf("expected OMEN MAX family defaults, got weight %v features %+v", omen.WeightKg, omen.Features)
	}
	if omen.Specs.Details["Memory"] == "" || len(omen.BuyLinks) != 1 || omen.BuyLinks[0].URL != omen.URL {
		t.Fatalf("expected spec details and a store buy link, got %+v %+v", omen.Specs.Details, omen.BuyLinks)
	}

	victus := products[1]
	if victus.Model != "HP Victus 15-fb3004AX" {
		t.Fatalf("expected model to stop at the first comma, got %q", victus.Model)
	}
	if victus.CPUBrand != enums.CPUBrandAMD || victus.CPUTier != "Ryzen 5" {
		t.Fatalf("expected title cpu to win, got %s %s", victus.CPUBrand, victus.CPUTier)
	}
	if victus.GPUModel != "RTX 3050" || victus.ScreenSize != 15.6 || victus.Resolution != enums.ResolutionFHD || victus.RefreshHz != 144 {
		t.Fatalf("unexpected victus specs: %s %s", victus.GPUModel, victus.DisplaySummary())
	}
	if victus.Rating != DefaultRating {
		t.Fatalf("expected default rating, got %v", victus.Rating)
	}
	if victus.ImageURL != "https://www.hp.com/media/victus-300.png" {
		t.Fatalf("expected first srcset entry, got %q", victus.ImageURL)
	}
	if want := []enums.UseCase{enums.UseCaseGaming, enums.UseCaseStudent}; !reflect.DeepEqual(victus.UseCases, want) {
		t.Fatalf("low tier gpu should force gaming/student, got %v", victus.UseCases)
	}

	pavilion := products[2]
	if pavilion.URL != "https://www.hp.com/in-en/shop/pavilion-plus-14.html" {
		t.Fatalf("expected relative link to be absolutized, got %q", pavilion.URL)
	}
	if pavilion.GPUModel != normalize.IntegratedGraphics || pavilion.GPUType != enums.GPUTypeIntegrated {
		t.Fatalf("expected integrated graphics, got %s %s", pavilion.GPUModel, pavilion.GPUType)
	}
	if pavilion.Price != 82999 || pavilion.Rating != 4 {
		t.Fatalf("unexpected price/rating: %d %v", pavilion.Price, pavilion.Rating)
	}
	if pavilion.Resolution != enums.Resolution3K || pavilion.Panel != enums.PanelOLED || pavilion.RefreshHz != 120 {
		t.Fatalf("unexpected pavilion display: %s", pavilion.DisplaySummary())
	}
	if pavilion.ImageURL != "" {
		t.Fatalf("expected empty image url, got %q", pavilion.ImageURL)
	}
	if want := []enums.UseCase{enums.UseCaseStudent}; !reflect.DeepEqual(pavilion.UseCases, want) {
		t.Fatalf("expected family use cases, got %v", pavilion.UseCases)
	}
}

func TestExtractCustomSelectors(t *testing.T) {
	html := `<div class="grid">
		<article class="tile" data-sku="X-1">
			<h3><a href="/p/x1">ASUS ROG Strix G16 i7-13650HX RTX 4070 16GB DDR5 1TB SSD 16" QHD+ 240Hz</a></h3>
			<div class="cost">₹1,64,990</div>
		</article>
	</div>`
	src := Source{
		Brand: "ASUS",
		URL:   "https://shop.asus.com/in/laptops",
		Selectors: Selectors{
			Card:  "article.tile",
			Title: "h3",
			Link:  "h3 a",
			Price: ".cost",
		},
	}

	products := Extract(html, src)
	if len(products) != 1 {
		t.Fatalf("expected one product, got %d", len(products))
	}
	p := products[0]
	if p.URL != "https://shop.asus.com/p/x1" || p.Price != 164990 {
		t.Fatalf("unexpected url/price: %q %d", p.URL, p.Price)
	}
	if p.Series != "ROG Strix" || p.Resolution != enums.Resolution2K || p.RefreshHz != 240 {
		t.Fatalf("unexpected title-derived fields: %s %s", p.Series, p.DisplaySummary())
	}
	if p.CPUTier != "i7" || p.GPUModel != "RTX 4070" || p.RAMGB != 16 || p.StorageGB != 1024 {
		t.Fatalf("unexpected title-derived specs: %+v", p)
	}
	if want := []enums.UseCase{enums.UseCaseGaming, enums.UseCaseCreator}; !reflect.DeepEqual(p.UseCases, want) {
		t.Fatalf("high tier gpu should add creator, got %v", p.UseCases)
	}
}

func TestExtractEmptyAndUnknownInput(t *testing.T) {
	if got := Extract("", NewSource("HP", listingURL)); len(got) != 0 {
		t.Fatalf("expected no products from empty html, got %d", len(got))
	}
	page := ExtractPage("<html><body><p>maintenance</p></body></html>", NewSource("HP", listingURL))
	if len(page.Products) != 0 || page.MaxPage != 1 {
		t.Fatalf("expected empty page with max page 1, got %+v", page)
	}
}

func TestMaxPage(t *testing.T) {
	cases := []struct {
		name string
		html string
		want int
	}{
		{"none", `<a href="/laptops.html">All</a>`, 1},
		{"query", `<a href="?p=4">4</a><a href="?p=2">2</a>`, 4},
		{"ampersand", `<a href="/l.html?limit=24&amp;p=7">7</a>`, 7},
		{"capped", `<a href="?p=999">last</a>`, maxPages},
		{"ignores other params", `<a href="?page=9&amp;sp=8">x</a>`, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaxPage(tc.html); got != tc.want {
				t.Fatalf("MaxPage() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExtractBattery(t *testing.T) {
	battery, ok := ExtractBattery(readFixture(t, "omen_detail.html"))
	if !ok {
		t.Fatal("expected battery row to be found")
	}
	if battery.Wh != 83 {
		t.Fatalf("expected 83Wh, got %d", battery.Wh)
	}
	if !strings.HasPrefix(battery.Text, "6-cell 83Wh") {
		t.Fatalf("expected standardized battery text, got %q", battery.Text)
	}

	dl := `<dl><dt>Weight</dt><dd>1.4 kg</dd><dt>Battery</dt><dd>3 Cell 53.5 WHr Li-ion</dd></dl>`
	battery, ok = ExtractBattery(dl)
	if !ok || battery.Wh != 54 || battery.Text != "3-cell 53.5Wh Li-ion" {
		t.Fatalf("unexpected definition-list battery: %+v ok=%v", battery, ok)
	}

	if _, ok := ExtractBattery(`<table><tr><th>Battery life</th><td>Up to 9 hours</td></tr></table>`); ok {
		t.Fatal("battery life rows must not be read as capacity")
	}
}

func TestAdjustUseCases(t *testing.T) {
	base := []enums.UseCase{enums.UseCaseCreator}
	if got := adjustUseCases(base, "RTX 4050", enums.GPUTypeDedicated); !reflect.DeepEqual(got, []enums.UseCase{enums.UseCaseGaming, enums.UseCaseStudent}) {
		t.Fatalf("low tier: got %v", got)
	}
	if got := adjustUseCases([]enums.UseCase{enums.UseCaseGaming}, "RTX 4080", enums.GPUTypeDedicated); !reflect.DeepEqual(got, []enums.UseCase{enums.UseCaseGaming, enums.UseCaseCreator}) {
		t.Fatalf("high tier: got %v", got)
	}
	if got := adjustUseCases(base, normalize.IntegratedGraphics, enums.GPUTypeIntegrated); !reflect.DeepEqual(got, base) {
		t.Fatalf("integrated: got %v", got)
	}
	got := adjustUseCases(base, "RTX 4060", enums.GPUTypeDedicated)
	got[0] = enums.UseCaseGaming
	if base[0] != enums.UseCaseCreator {
		t.Fatal("adjustUseCases must not alias the family table")
	}
}
