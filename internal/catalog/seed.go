package catalog

import (
	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

// Spec is the author-facing shape of a hand-written catalog entry. Raw vendor
// strings go through the normalizers so hand-written rows share the scraped
// vocabulary.
type Spec struct {
	Brand    string
	Model    string
	SKU      string
	Price    int
	Currency string
	Region   string
	URL      string
	ImageURL string

	CPU     string
	GPU     string
	RAMGB   int
	Storage string
	Display string

	WeightKg     float64
	BatteryHours float64
	Battery      string
	Rating       float64

	UseCases   []enums.UseCase
	Ports      []string
	Features   Features
	Details    map[string]string
	Benchmarks Benchmarks
	BuyLinks   []BuyLink
}

// FromSpec normalizes a hand-written entry into a Product.
func FromSpec(s Spec) Product {
	p := Product{
		Brand:        s.Brand,
		Series:       normalize.Series(s.Brand + " " + s.Model),
		Model:        s.Model,
		SKU:          s.SKU,
		Price:        s.Price,
		Currency:     s.Currency,
		Region:       s.Region,
		URL:          s.URL,
		ImageURL:     s.ImageURL,
		RAMGB:        s.RAMGB,
		WeightKg:     s.WeightKg,
		BatteryHours: s.BatteryHours,
		BatteryWh:    normalize.BatteryWh(s.Battery),
		BatteryType:  normalize.BatteryText(s.Battery),
		Rating:       s.Rating,
		UseCases:     append([]enums.UseCase(nil), s.UseCases...),
		Ports:        append([]string(nil), s.Ports...),
		Features:     s.Features,
		Specs:        Specs{Details: s.Details},
		Benchmarks:   s.Benchmarks,
		BuyLinks:     append([]BuyLink(nil), s.BuyLinks...),
	}

	p.CPUBrand, p.CPUTier = normalize.CPU(s.CPU)
	if model, ok := normalize.FindCPUModel(s.CPU); ok {
		p.CPUModel = model
	}
	p.GPUModel, p.GPUType = normalize.GPU(s.GPU)

	p.StorageType = enums.StorageTypeSSD
	if gb, kind, ok := normalize.Storage(s.Storage); ok {
		p.StorageGB, p.StorageType = gb, kind
	}

	if size, ok := normalize.ScreenSize(s.Display); ok {
		p.ScreenSize = size
	}
	p.Resolution = enums.ResolutionFHD
	if res, ok := normalize.FindResolution(s.Display); ok {
		p.Resolution = res
	}
	if hz, ok := normalize.Refresh(s.Display); ok {
		p.RefreshHz = hz
	}
	p.Panel = normalize.Panel(s.Display)

	if len(s.BuyLinks) == 0 && s.URL != "" {
		p.BuyLinks = []BuyLink{{Label: s.Brand + " Store", URL: s.URL}}
	}
	return p
}

var seedSpecs = []Spec{
	{
		Brand: "ASUS", Model: "TUF A15", SKU: "SEED-ASUS-TUF-A15", Price: 1099, Currency: "USD", Region: "US",
		CPU: "Ryzen 7 7840HS", GPU: "RTX 4060 8GB", RAMGB: 16, Storage: "1TB NVMe Gen4", Display: `15.6" FHD 144Hz`,
		WeightKg: 2.2, BatteryHours: 7, Battery: "4-cell 90Wh Li-ion", Rating: 4.4,
		UseCases: []enums.UseCase{enums.UseCaseGaming, enums.UseCaseStudent},
		Ports:    []string{"USB-C", "USB-A", "HDMI", "RJ45", "Audio Jack"},
		Features: Features{GoodCooling: true, RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true},
	},
	{
		Brand: "Lenovo", Model: "Legion 5", SKU: "SEED-LENOVO-LEGION-5", Price: 1249, Currency: "USD", Region: "US",
		CPU: "Intel i7-13700H", GPU: "RTX 4060 8GB", RAMGB: 16, Storage: "1TB NVMe Gen4", Display: `16" WQXGA 165Hz`,
		WeightKg: 2.4, BatteryHours: 6, Battery: "4-cell 80Wh Li-polymer", Rating: 4.6,
		UseCases: []enums.UseCase{enums.UseCaseGaming, enums.UseCaseCreator},
		Ports:    []string{"USB-C", "USB-A", "HDMI", "RJ45", "Audio Jack"},
		Features: Features{SRGB100: true, GoodCooling: true, RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true},
	},
	{
		Brand: "Acer", Model: "Nitro V", SKU: "SEED-ACER-NITRO-V", Price: 899, Currency: "USD", Region: "US",
		CPU: "Intel i5-13420H", GPU: "RTX 4050 6GB", RAMGB: 16, Storage: "512GB NVMe Gen4", Display: `15.6" FHD 144Hz`,
		WeightKg: 2.1, BatteryHours: 5, Battery: "3-cell 57Wh Li-ion", Rating: 4.2,
		UseCases: []enums.UseCase{enums.UseCaseGaming, enums.UseCaseStudent},
		Ports:    []string{"USB-C", "USB-A", "HDMI", "RJ45", "Audio Jack"},
		Features: Features{RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true},
	},
	{
		Brand: "HP", Model: "Victus 16", SKU: "SEED-HP-VICTUS-16", Price: 949, Currency: "USD", Region: "US",
		CPU: "Ryzen 5 7640HS", GPU: "RTX 4050 6GB", RAMGB: 16, Storage: "512GB NVMe Gen4", Display: `16.1" FHD 144Hz`,
		WeightKg: 2.3, BatteryHours: 6, Battery: "4-cell 70Wh Li-ion", Rating: 4.3,
		UseCases: []enums.UseCase{enums.UseCaseGaming, enums.UseCaseStudent},
		Ports:    []string{"USB-C", "USB-A", "HDMI", "RJ45", "Audio Jack"},
		Features: Features{RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true},
	},
	{
		Brand: "Dell", Model: "XPS 15", SKU: "SEED-DELL-XPS-15", Price: 1899, Currency: "USD", Region: "US",
		CPU: "Intel i7-13700H", GPU: "RTX 4050 6GB", RAMGB: 32, Storage: "1TB NVMe Gen4", Display: `15.6" 3.5K OLED 60Hz`,
		WeightKg: 1.9, BatteryHours: 9, Battery: "6-cell 86Wh Li-ion", Rating: 4.5,
		UseCases: []enums.UseCase{enums.UseCaseCreator},
		Ports:    []string{"USB-C", "Thunderbolt", "SD Card", "Audio Jack"},
		Features: Features{SRGB100: true, DCIP3: true, BacklitKeyboard: true},
	},
	{
		Brand: "MSI", Model: "Katana 15", SKU: "SEED-MSI-KATANA-15", Price: 1399, Currency: "USD", Region: "US",
		CPU: "Intel i7-13620H", GPU: "RTX 4070 8GB", RAMGB: 16, Storage: "1TB NVMe Gen4", Display: `15.6" FHD 144Hz`,
		WeightKg: 2.3, BatteryHours: 4, Battery: "3-cell 53.5Wh Li-ion", Rating: 4.1,
		UseCases: []enums.UseCase{enums.UseCaseGaming, enums.UseCaseCreator},
		Ports:    []string{"USB-C", "USB-A", "HDMI", "RJ45", "Audio Jack"},
		Features: Features{GoodCooling: true, RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true},
	},
}

// FallbackSeed is the last-resort catalog when no live source and no snapshot
// produced any records.
func FallbackSeed() []Product {
	products := make([]Product, 0, len(seedSpecs))
	for _, s := range seedSpecs {
		products = append(products, FromSpec(s))
	}
	return products
}
