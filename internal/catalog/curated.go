package catalog

import (
	"github.com/angelmondragon/laptopfinder-backend/internal/configurator"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

// Curated entries cover brands that have no live listing source. They are
// merged after scraped records, so a scraped SKU always wins.
func Curated() []Product {
	products := make([]Product, 0, len(curatedSpecs))
	for _, s := range curatedSpecs {
		p := FromSpec(s)
		if matrix, ok := curatedConfigurations[s.SKU]; ok {
			p.Specs.Configuration = configurator.NormalizeWithBase(matrix, s.Price)
		}
		products = append(products, p)
	}
	return products
}

// ChassisSKUs lists the SKUs whose configurator pages describe the same
// chassis as sku, sku first. Unknown SKUs stand alone.
func ChassisSKUs(sku string) []string {
	out := []string{sku}
	for _, sibling := range curatedChassis[SKUKey(sku)] {
		if SKUKey(sibling) != SKUKey(sku) {
			out = append(out, sibling)
		}
	}
	return out
}

// curatedChassis maps a curated SKU key to the regional variants sold on the
// same chassis; their configurator pages list different upgrade options.
var curatedChassis = map[string][]string{
	"83F5CTO1WW": {"83F5002AIN", "83F5002BIN"},
	"83GS00FCIN": {"83GS00JXIN"},
}

var gamingPorts = []string{"USB-C", "USB-A", "HDMI", "RJ45", "Audio Jack"}

var curatedSpecs = []Spec{
	{
		Brand: "Lenovo", Model: "Legion Pro 7i Gen 10", SKU: "83F5CTO1WW", Price: 309999, Currency: "INR", Region: "IN",
		URL: "https://www.lenovo.com/in/en/p/laptops/legion-laptops/legion-pro-series/legion-pro-7i-gen-10-16-inch-intel/83f5cto1ww",
		CPU: "Intel Core Ultra 9 275HX", GPU: "NVIDIA GeForce RTX 5080 Laptop GPU 16GB GDDR7", RAMGB: 32,
		Storage: "2TB SSD M.2 PCIe Gen4", Display: `16" WQXGA OLED 240Hz`,
		WeightKg: 2.6, BatteryHours: 5, Battery: "4 Cell 99.9 WHr Li-ion", Rating: 4.8,
		UseCases: []enums.UseCase{enums.UseCaseGaming, enums.UseCaseCreator},
		Ports:    append([]string{"Thunderbolt"}, gamingPorts...),
		Features: Features{SRGB100: true, DCIP3: true, GoodCooling: true, RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true},
		Details:  map[string]string{"Operating System": "Windows 11 Home", "Keyboard": "Per-key RGB"},
		Benchmarks: Benchmarks{
			Games: []GameFPS{
				{Game: "Cyberpunk 2077", Settings: "1600p Ultra, DLSS Quality", FPS: 118},
				{Game: "Forza Horizon 5", Settings: "1600p Extreme", FPS: 142},
			},
			Scores: map[string]int{"cpu": 41000, "gpu": 26000},
		},
	},
	{
		Brand: "Lenovo", Model: "LOQ 15IAX9", SKU: "83GS00FCIN", Price: 79990, Currency: "INR", Region: "IN",
		CPU: "Intel Core i5-12450HX", GPU: "NVIDIA GeForce RTX 3050 6GB", RAMGB: 16,
		Storage: "512GB SSD M.2 PCIe", Display: `15.6" FHD IPS 144Hz`,
		WeightKg: 2.38, BatteryHours: 5, Battery: "3 Cell 60Wh Li-polymer", Rating: 4.3,
		UseCases: []enums.UseCase{enums.UseCaseGaming, enums.UseCaseStudent},
		Ports:    gamingPorts,
		Features: Features{RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true},
		Benchmarks: Benchmarks{
			Games: []GameFPS{{Game: "Valorant", Settings: "1080p High", FPS: 210}},
		},
	},
	{
		Brand: "Dell", Model: "G16 7630", SKU: "DELL-G16-7630-IN", Price: 154990, Currency: "INR", Region: "IN",
		CPU: "13th Gen Intel Core i9-13900HX", GPU: "NVIDIA GeForce RTX 4070 8GB", RAMGB: 16,
		Storage: "1TB SSD", Display: `16" QHD+ 240Hz WVA`,
		WeightKg: 2.8, BatteryHours: 4, Battery: "6 Cell 86 Wh", Rating: 4.4,
		UseCases: []enums.UseCase{enums.UseCaseGaming, enums.UseCaseCreator},
		Ports:    append([]string{"Thunderbolt"}, gamingPorts...),
		Features: Features{GoodCooling: true, RAMUpgradable: true, BacklitKeyboard: true},
	},
	{
		Brand: "MSI", Model: "Katana 15 B13VFK", SKU: "MSI-KATANA15-B13VFK", Price: 109990, Currency: "INR", Region: "IN",
		CPU: "Intel Core i7-13620H", GPU: "NVIDIA GeForce RTX 4060 8GB", RAMGB: 16,
		Storage: "1TB NVMe SSD", Display: `15.6" FHD IPS 144Hz`,
		WeightKg: 2.25, BatteryHours: 4, Battery: "3-cell 53.5Wh Li-ion", Rating: 4.2,
		UseCases: []enums.UseCase{enums.UseCaseGaming},
		Ports:    gamingPorts,
		Features: Features{RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true},
	},
	{
		Brand: "Acer", Model: "Swift Go 14", SKU: "ACER-SWIFTGO14-IN", Price: 74990, Currency: "INR", Region: "IN",
		CPU: "Intel Core Ultra 5 125H", GPU: "Intel Arc Graphics", RAMGB: 16,
		Storage: "512GB SSD", Display: `14" 2.8K OLED 90Hz`,
		WeightKg: 1.32, BatteryHours: 11, Battery: "65Wh Li-ion", Rating: 4.4,
		UseCases: []enums.UseCase{enums.UseCaseStudent, enums.UseCaseCreator},
		Ports:    []string{"USB-C", "Thunderbolt", "USB-A", "HDMI", "Audio Jack"},
		Features: Features{DCIP3: true, BacklitKeyboard: true},
	},
	{
		Brand: "Apple", Model: "MacBook Air 13 M3", SKU: "MRXN3HN/A", Price: 114900, Currency: "INR", Region: "IN",
		CPU: "Apple M3", GPU: "Apple 8-core GPU integrated", RAMGB: 16,
		Storage: "256GB SSD", Display: `13.6" 2.5K Liquid Retina IPS 60Hz`,
		WeightKg: 1.24, BatteryHours: 15, Battery: "52.6Wh Li-polymer", Rating: 4.7,
		UseCases: []enums.UseCase{enums.UseCaseStudent, enums.UseCaseCreator},
		Ports:    []string{"USB-C", "Thunderbolt", "Audio Jack"},
		Features: Features{DCIP3: true, BacklitKeyboard: true},
	},
	{
		Brand: "Samsung", Model: "Galaxy Book4 Pro 14", SKU: "NP940XGK-KG1IN", Price: 131990, Currency: "INR", Region: "IN",
		CPU: "Intel Core Ultra 7 155H", GPU: "Intel Arc Graphics", RAMGB: 16,
		Storage: "512GB NVMe SSD", Display: `14" 3K AMOLED 120Hz`,
		WeightKg: 1.23, BatteryHours: 12, Battery: "63Wh", Rating: 4.5,
		UseCases: []enums.UseCase{enums.UseCaseStudent, enums.UseCaseCreator},
		Ports:    []string{"USB-C", "Thunderbolt", "USB-A", "HDMI", "SD Card", "Audio Jack"},
		Features: Features{DCIP3: true, BacklitKeyboard: true},
	},
}

var curatedConfigurations = map[string][]configurator.RawCategory{
	"83F5CTO1WW": {
		{
			Name: "Memory",
			Options: []configurator.RawOption{
				{Name: "32 GB DDR5-6400MT/s (SODIMM)(2 x 16 GB)", Included: true},
				{Name: "64 GB DDR5-6400MT/s (SODIMM)(2 x 32 GB)", PriceNote: "+₹24,500"},
			},
		},
		{
			Name: "Storage",
			Options: []configurator.RawOption{
				{Name: "2 TB SSD M.2 2280 PCIe Gen4 TLC", Included: true},
				{Name: "2TB SSD M.2 2280 PCIe Gen4 TLC", Details: "Performance NVMe"},
				{Name: "4 TB SSD (2 x 2 TB) RAID 0", PriceNote: "+₹32,000"},
			},
		},
		{
			Name: "Graphics",
			Options: []configurator.RawOption{
				{Name: "NVIDIA® GeForce RTX™ 5080 Laptop GPU 16GB GDDR7", Included: true},
				{Name: "NVIDIA® GeForce RTX™ 5090 Laptop GPU 24GB GDDR7", PriceNote: "+₹85,000"},
			},
		},
	},
}
