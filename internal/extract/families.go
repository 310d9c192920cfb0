package extract

import (
	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

// family holds author-supplied defaults for a product line. Listing cards
// rarely show weight, battery life or ports, so these are not scraped.
type family struct {
	WeightKg     float64
	BatteryHours float64
	ScreenSize   float64
	RefreshHz    int
	Ports        []string
	UseCases     []enums.UseCase
	Features     catalog.Features
}

var (
	gamingPorts    = []string{"USB-C", "USB-A", "HDMI", "RJ45", "Audio Jack"}
	premiumPorts   = []string{"USB-C", "Thunderbolt", "USB-A", "HDMI", "Audio Jack"}
	ultrabookPorts = []string{"USB-C", "Thunderbolt", "Audio Jack"}
	everydayPorts  = []string{"USB-C", "USB-A", "HDMI", "Audio Jack"}

	gaming        = []enums.UseCase{enums.UseCaseGaming}
	gamingStudent = []enums.UseCase{enums.UseCaseGaming, enums.UseCaseStudent}
	gamingCreator = []enums.UseCase{enums.UseCaseGaming, enums.UseCaseCreator}
	creator       = []enums.UseCase{enums.UseCaseCreator}
	creatorStudy  = []enums.UseCase{enums.UseCaseCreator, enums.UseCaseStudent}
	student       = []enums.UseCase{enums.UseCaseStudent}

	flagshipGaming = catalog.Features{GoodCooling: true, RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true}
	budgetGaming   = catalog.Features{RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true}
	creatorPanel   = catalog.Features{SRGB100: true, DCIP3: true, BacklitKeyboard: true}
)

// families is keyed by the canonical series name from normalize.Series.
var families = map[string]family{
	"OMEN MAX":            {WeightKg: 2.7, BatteryHours: 5, ScreenSize: 16, RefreshHz: 240, Ports: gamingPorts, UseCases: gamingCreator, Features: flagshipGaming},
	"OMEN Transcend":      {WeightKg: 2.0, BatteryHours: 8, ScreenSize: 14, RefreshHz: 120, Ports: premiumPorts, UseCases: gamingCreator, Features: catalog.Features{DCIP3: true, GoodCooling: true, BacklitKeyboard: true}},
	"OMEN":                {WeightKg: 2.4, BatteryHours: 6, ScreenSize: 16.1, RefreshHz: 165, Ports: gamingPorts, UseCases: gamingCreator, Features: flagshipGaming},
	"Victus":              {WeightKg: 2.3, BatteryHours: 6, ScreenSize: 15.6, RefreshHz: 144, Ports: gamingPorts, UseCases: gamingStudent, Features: budgetGaming},
	"Pavilion":            {WeightKg: 1.7, BatteryHours: 8, ScreenSize: 14, RefreshHz: 60, Ports: everydayPorts, UseCases: student, Features: catalog.Features{BacklitKeyboard: true}},
	"Envy":                {WeightKg: 1.6, BatteryHours: 10, ScreenSize: 14, RefreshHz: 120, Ports: premiumPorts, UseCases: creatorStudy, Features: catalog.Features{SRGB100: true, BacklitKeyboard: true}},
	"Spectre":             {WeightKg: 1.4, BatteryHours: 11, ScreenSize: 14, RefreshHz: 120, Ports: ultrabookPorts, UseCases: creator, Features: creatorPanel},
	"ROG Strix SCAR":      {WeightKg: 2.6, BatteryHours: 5, ScreenSize: 16, RefreshHz: 240, Ports: gamingPorts, UseCases: gamingCreator, Features: flagshipGaming},
	"ROG Strix":           {WeightKg: 2.5, BatteryHours: 5, ScreenSize: 16, RefreshHz: 165, Ports: gamingPorts, UseCases: gaming, Features: flagshipGaming},
	"ROG Zephyrus":        {WeightKg: 1.8, BatteryHours: 8, ScreenSize: 14, RefreshHz: 120, Ports: premiumPorts, UseCases: gamingCreator, Features: catalog.Features{SRGB100: true, DCIP3: true, GoodCooling: true, BacklitKeyboard: true}},
	"TUF Gaming":          {WeightKg: 2.2, BatteryHours: 7, ScreenSize: 15.6, RefreshHz: 144, Ports: gamingPorts, UseCases: gamingStudent, Features: flagshipGaming},
	"Legion Pro":          {WeightKg: 2.6, BatteryHours: 5, ScreenSize: 16, RefreshHz: 240, Ports: gamingPorts, UseCases: gamingCreator, Features: catalog.Features{SRGB100: true, GoodCooling: true, RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true}},
	"Legion":              {WeightKg: 2.4, BatteryHours: 6, ScreenSize: 16, RefreshHz: 165, Ports: gamingPorts, UseCases: gamingCreator, Features: catalog.Features{SRGB100: true, GoodCooling: true, RAMUpgradable: true, ExtraSSDSlot: true, BacklitKeyboard: true}},
	"LOQ":                 {WeightKg: 2.4, BatteryHours: 5, ScreenSize: 15.6, RefreshHz: 144, Ports: gamingPorts, UseCases: gamingStudent, Features: budgetGaming},
	"IdeaPad":             {WeightKg: 1.6, BatteryHours: 8, ScreenSize: 15.6, RefreshHz: 60, Ports: everydayPorts, UseCases: student},
	"Yoga":                {WeightKg: 1.4, BatteryHours: 11, ScreenSize: 14, RefreshHz: 90, Ports: ultrabookPorts, UseCases: creatorStudy, Features: catalog.Features{DCIP3: true, BacklitKeyboard: true}},
	"Predator Helios Neo": {WeightKg: 2.8, BatteryHours: 5, ScreenSize: 16, RefreshHz: 165, Ports: gamingPorts, UseCases: gaming, Features: flagshipGaming},
	"Predator Helios":     {WeightKg: 2.7, BatteryHours: 5, ScreenSize: 16, RefreshHz: 240, Ports: gamingPorts, UseCases: gamingCreator, Features: flagshipGaming},
	"Nitro V":             {WeightKg: 2.1, BatteryHours: 5, ScreenSize: 15.6, RefreshHz: 144, Ports: gamingPorts, UseCases: gamingStudent, Features: budgetGaming},
	"Nitro":               {WeightKg: 2.5, BatteryHours: 5, ScreenSize: 15.6, RefreshHz: 144, Ports: gamingPorts, UseCases: gamingStudent, Features: budgetGaming},
	"Swift":               {WeightKg: 1.3, BatteryHours: 12, ScreenSize: 14, RefreshHz: 90, Ports: ultrabookPorts, UseCases: student},
	"Katana":              {WeightKg: 2.3, BatteryHours: 4, ScreenSize: 15.6, RefreshHz: 144, Ports: gamingPorts, UseCases: gamingCreator, Features: budgetGaming},
	"G Series":            {WeightKg: 2.8, BatteryHours: 5, ScreenSize: 16, RefreshHz: 165, Ports: gamingPorts, UseCases: gamingStudent, Features: flagshipGaming},
	"XPS":                 {WeightKg: 1.9, BatteryHours: 9, ScreenSize: 15.6, RefreshHz: 60, Ports: ultrabookPorts, UseCases: creator, Features: creatorPanel},
}

var (
	dedicatedFallback  = family{WeightKg: 2.3, BatteryHours: 5, ScreenSize: 15.6, RefreshHz: 144, Ports: gamingPorts, UseCases: gamingStudent, Features: catalog.Features{BacklitKeyboard: true}}
	integratedFallback = family{WeightKg: 1.6, BatteryHours: 9, ScreenSize: 14, RefreshHz: 60, Ports: everydayPorts, UseCases: student}
)

func familyFor(series string, kind enums.GPUType) family {
	if f, ok := families[series]; ok {
		return f
	}
	if kind == enums.GPUTypeIntegrated {
		return integratedFallback
	}
	return dedicatedFallback
}

// adjustUseCases applies the GPU tier rules: a low-tier dedicated GPU is
// gaming/student only and a high-tier GPU always qualifies for creator work.
func adjustUseCases(base []enums.UseCase, gpuModel string, kind enums.GPUType) []enums.UseCase {
	if kind != enums.GPUTypeDedicated {
		return append([]enums.UseCase(nil), base...)
	}
	switch normalize.GPUTier(gpuModel) {
	case normalize.TierLow:
		return []enums.UseCase{enums.UseCaseGaming, enums.UseCaseStudent}
	case normalize.TierHigh:
		out := append([]enums.UseCase(nil), base...)
		for _, useCase := range out {
			if useCase == enums.UseCaseCreator {
				return out
			}
		}
		return append(out, enums.UseCaseCreator)
	}
	return append([]enums.UseCase(nil), base...)
}
