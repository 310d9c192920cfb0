package enums

import (
	"fmt"
	"strings"
)

// Resolution is the canonical display resolution class.
type Resolution string

const (
	ResolutionFHD Resolution = "FHD"
	Resolution2K  Resolution = "2K"
	Resolution3K  Resolution = "3K"
	Resolution4K  Resolution = "4K"
	// ResolutionQHD is accepted on input only; it canonicalizes to Resolution2K.
	ResolutionQHD Resolution = "QHD"
)

var validResolutions = []Resolution{
	ResolutionFHD,
	Resolution2K,
	Resolution3K,
	Resolution4K,
	ResolutionQHD,
}

// ResolutionOrder is the facet display order for canonical resolutions.
var ResolutionOrder = []string{"FHD", "2K", "3K", "4K"}

// String implements fmt.Stringer.
func (r Resolution) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Resolution.
func (r Resolution) IsValid() bool {
	for _, candidate := range validResolutions {
		if candidate == r {
			return true
		}
	}
	return false
}

// Canonical folds the QHD synonym into 2K.
func (r Resolution) Canonical() Resolution {
	if r == ResolutionQHD {
		return Resolution2K
	}
	return r
}

// Panel is the canonical display panel technology.
type Panel string

const (
	PanelIPS  Panel = "IPS"
	PanelOLED Panel = "OLED"
	PanelLED  Panel = "LED"
)

var validPanels = []Panel{PanelIPS, PanelOLED, PanelLED}

// PanelOrder is the facet display order for panels.
var PanelOrder = []string{"IPS", "OLED", "LED"}

func (p Panel) String() string {
	return string(p)
}

func (p Panel) IsValid() bool {
	for _, candidate := range validPanels {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePanel converts raw input into a Panel.
func ParsePanel(value string) (Panel, error) {
	for _, candidate := range validPanels {
		if strings.EqualFold(string(candidate), strings.TrimSpace(value)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid panel %q", value)
}

// GPUType separates integrated from dedicated graphics.
type GPUType string

const (
	GPUTypeIntegrated GPUType = "integrated"
	GPUTypeDedicated  GPUType = "dedicated"
)

var validGPUTypes = []GPUType{GPUTypeIntegrated, GPUTypeDedicated}

func (g GPUType) String() string {
	return string(g)
}

func (g GPUType) IsValid() bool {
	for _, candidate := range validGPUTypes {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGPUType converts raw input into a GPUType.
func ParseGPUType(value string) (GPUType, error) {
	for _, candidate := range validGPUTypes {
		if strings.EqualFold(string(candidate), strings.TrimSpace(value)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gpu type %q", value)
}

// CPUBrand identifies the processor vendor.
type CPUBrand string

const (
	CPUBrandIntel CPUBrand = "Intel"
	CPUBrandAMD   CPUBrand = "AMD"
	CPUBrandApple CPUBrand = "Apple"
)

var validCPUBrands = []CPUBrand{CPUBrandIntel, CPUBrandAMD, CPUBrandApple}

func (c CPUBrand) String() string {
	return string(c)
}

func (c CPUBrand) IsValid() bool {
	for _, candidate := range validCPUBrands {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCPUBrand converts raw input into a CPUBrand, case-insensitively.
func ParseCPUBrand(value string) (CPUBrand, error) {
	for _, candidate := range validCPUBrands {
		if strings.EqualFold(string(candidate), strings.TrimSpace(value)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cpu brand %q", value)
}

// StorageType is the primary drive technology.
type StorageType string

const (
	StorageTypeSSD StorageType = "SSD"
	StorageTypeHDD StorageType = "HDD"
)

var validStorageTypes = []StorageType{StorageTypeSSD, StorageTypeHDD}

func (s StorageType) String() string {
	return string(s)
}

func (s StorageType) IsValid() bool {
	for _, candidate := range validStorageTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// UseCase tags the workloads a laptop is suited for.
type UseCase string

const (
	UseCaseGaming  UseCase = "gaming"
	UseCaseCreator UseCase = "creator"
	UseCaseStudent UseCase = "student"
)

var validUseCases = []UseCase{UseCaseGaming, UseCaseCreator, UseCaseStudent}

// UseCaseOrder is the facet display order for use-cases.
var UseCaseOrder = []string{"gaming", "creator", "student"}

func (u UseCase) String() string {
	return string(u)
}

func (u UseCase) IsValid() bool {
	for _, candidate := range validUseCases {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUseCase converts raw input into a UseCase.
func ParseUseCase(value string) (UseCase, error) {
	normalized := UseCase(strings.ToLower(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid use case %q", value)
}
