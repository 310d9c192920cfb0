// Package catalog holds the canonical laptop record, the SKU-keyed merge used
// by catalog builds and the gorm-backed store that mirrors the latest build.
package catalog

import (
	"strconv"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/internal/configurator"
	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

// Product is one canonical catalog row.
type Product struct {
	ID       uint   `json:"id"`
	Brand    string `json:"brand"`
	Series   string `json:"series"`
	Model    string `json:"model"`
	SKU      string `json:"sku"`
	Price    int    `json:"price"`
	Currency string `json:"currency"`
	Region   string `json:"region"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`

	CPUBrand enums.CPUBrand `json:"cpu_brand"`
	CPUTier  string         `json:"cpu_tier"`
	CPUModel string         `json:"cpu_model"`

	RAMGB       int               `json:"ram_gb"`
	StorageType enums.StorageType `json:"storage_type"`
	StorageGB   int               `json:"storage_gb"`

	GPUType  enums.GPUType `json:"gpu_type"`
	GPUModel string        `json:"gpu_model"`

	ScreenSize float64          `json:"screen_size"`
	Resolution enums.Resolution `json:"resolution"`
	RefreshHz  int              `json:"refresh_hz"`
	Panel      enums.Panel      `json:"panel"`

	WeightKg     float64 `json:"weight_kg"`
	BatteryHours float64 `json:"battery_hours"`
	BatteryWh    int     `json:"battery_wh"`
	BatteryType  string  `json:"battery_type"`
	Rating       float64 `json:"rating"`

	UseCases []enums.UseCase `json:"use_cases"`
	Ports    []string        `json:"ports"`
	Features Features        `json:"features"`

	Specs      Specs      `json:"specs"`
	Benchmarks Benchmarks `json:"benchmarks"`
	BuyLinks   []BuyLink  `json:"buy_links"`
}

// Features are the boolean toggles exposed as finder filters.
type Features struct {
	SRGB100         bool `json:"srgb_100"`
	DCIP3           bool `json:"dci_p3"`
	GoodCooling     bool `json:"good_cooling"`
	RAMUpgradable   bool `json:"ram_upgradable"`
	ExtraSSDSlot    bool `json:"extra_ssd_slot"`
	BacklitKeyboard bool `json:"backlit_keyboard"`
}

// Specs is the free-form spec table plus the optional configurator matrix.
type Specs struct {
	Details       map[string]string       `json:"details,omitempty"`
	Configuration []configurator.Category `json:"configuration,omitempty"`
}

type GameFPS struct {
	Game     string `json:"game"`
	Settings string `json:"settings"`
	FPS      int    `json:"fps"`
}

type Benchmarks struct {
	Games  []GameFPS      `json:"games,omitempty"`
	Scores map[string]int `json:"scores,omitempty"`
}

type BuyLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// DisplayName is "Brand Model" unless the model already carries the brand.
func (p Product) DisplayName() string {
	if p.Brand == "" || strings.HasPrefix(strings.ToLower(p.Model), strings.ToLower(p.Brand)) {
		return p.Model
	}
	return p.Brand + " " + p.Model
}

// CPUDisplay renders the processor the way product cards show it.
func (p Product) CPUDisplay() string {
	if p.CPUModel != "" {
		return p.CPUModel
	}
	return normalize.CPUDisplay(p.CPUBrand, p.CPUTier)
}

// StorageSummary renders capacity and type, e.g. "1TB SSD".
func (p Product) StorageSummary() string {
	return normalize.StorageSummary(p.StorageGB, p.StorageType)
}

// DisplaySummary renders size, resolution, refresh and panel, e.g. `15.6" 2K 165Hz IPS`.
func (p Product) DisplaySummary() string {
	parts := make([]string, 0, 4)
	if p.ScreenSize > 0 {
		parts = append(parts, strconv.FormatFloat(p.ScreenSize, 'f', -1, 64)+`"`)
	}
	if p.Resolution != "" {
		parts = append(parts, p.Resolution.String())
	}
	if p.RefreshHz > 0 {
		parts = append(parts, strconv.Itoa(p.RefreshHz)+"Hz")
	}
	if p.Panel != "" {
		parts = append(parts, p.Panel.String())
	}
	return strings.Join(parts, " ")
}

// HasUseCase reports whether the product carries the tag.
func (p Product) HasUseCase(useCase enums.UseCase) bool {
	for _, candidate := range p.UseCases {
		if candidate == useCase {
			return true
		}
	}
	return false
}

// HasPorts reports whether every wanted port is present.
func (p Product) HasPorts(wanted []string) bool {
	for _, want := range wanted {
		found := false
		for _, port := range p.Ports {
			if strings.EqualFold(port, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
