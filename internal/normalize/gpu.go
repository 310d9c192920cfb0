package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

const (
	// IntegratedGraphics is the single sentinel used for every iGPU.
	IntegratedGraphics = "Integrated Graphics"
	// DefaultGPU is the lowest dedicated tier, assumed when a listing names no GPU.
	DefaultGPU = "RTX 3050"
)

// Tier is a coarse GPU performance class.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

var (
	gpuVendorRe    = regexp.MustCompile(`(?i)\b(nvidia|geforce|amd)\b`)
	gpuNoiseRe     = regexp.MustCompile(`(?i)\blaptop\s+gpu\b|\bgpu\b|\b\d+\s*gb(\s+g?ddr\d+x?)?\b`)
	rtxRe          = regexp.MustCompile(`(?i)\brtx\s*-?\s*(a?\d{3,4})(\s*ti)?\b`)
	rxRe           = regexp.MustCompile(`(?i)\b(?:radeon\s+)?rx\s*-?\s*(\d{3,4})\s*(m|s)?(\s*xt)?\b`)
	arcTierRe      = regexp.MustCompile(`(?i)\barc\s+(a\d{3}m|b\d{3}|\d{3}[vt])\b`)
	arcRe          = regexp.MustCompile(`(?i)\barc\b`)
	integratedGPUs = regexp.MustCompile(`(?i)\b(integrated|uhd|iris|adreno|igpu|graphics|radeon\s+\d{3}m|shared)\b`)
)

// GPU normalizes raw GPU text into a model string and its integrated/dedicated kind.
func GPU(raw string) (string, enums.GPUType) {
	cleaned := Clean(raw)
	if cleaned == "" {
		return DefaultGPU, enums.GPUTypeDedicated
	}
	if model, ok := FindGPU(cleaned); ok {
		return model, GPUKind(model)
	}
	verbatim := gpuVendorRe.ReplaceAllString(cleaned, " ")
	verbatim = gpuNoiseRe.ReplaceAllString(verbatim, " ")
	verbatim = strings.TrimSpace(spaceRe.ReplaceAllString(verbatim, " "))
	if verbatim == "" {
		return DefaultGPU, enums.GPUTypeDedicated
	}
	return verbatim, GPUKind(verbatim)
}

// FindGPU reports a recognized GPU model inside free text.
func FindGPU(text string) (string, bool) {
	if m := rtxRe.FindStringSubmatch(text); m != nil {
		model := "RTX " + strings.ToUpper(m[1])
		if strings.TrimSpace(m[2]) != "" {
			model += " Ti"
		}
		return model, true
	}
	if m := rxRe.FindStringSubmatch(text); m != nil {
		model := "RX " + m[1] + strings.ToUpper(m[2])
		if strings.TrimSpace(m[3]) != "" {
			model += " XT"
		}
		return model, true
	}
	if m := arcTierRe.FindStringSubmatch(text); m != nil {
		return "Arc " + strings.ToUpper(m[1]), true
	}
	if integratedGPUs.MatchString(text) {
		return IntegratedGraphics, true
	}
	if arcRe.MatchString(text) {
		return "Arc", true
	}
	return "", false
}

// GPUKind classifies a normalized model.
func GPUKind(model string) enums.GPUType {
	if model == IntegratedGraphics {
		return enums.GPUTypeIntegrated
	}
	return enums.GPUTypeDedicated
}

// GPUTier buckets a normalized model into low, mid or high performance.
func GPUTier(model string) Tier {
	if model == IntegratedGraphics || strings.HasPrefix(model, "Arc") {
		return TierLow
	}
	if m := rtxRe.FindStringSubmatch(model); m != nil {
		number, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(m[1]), "A"))
		if err != nil || number < 1000 {
			return TierMid
		}
		switch class := number % 100; {
		case class <= 50:
			return TierLow
		case class == 60:
			return TierMid
		default:
			return TierHigh
		}
	}
	if m := rxRe.FindStringSubmatch(model); m != nil {
		number, _ := strconv.Atoi(m[1])
		switch class := (number / 100) % 10; {
		case class <= 5:
			return TierLow
		case class == 6 && strings.TrimSpace(m[3]) == "":
			return TierMid
		default:
			return TierHigh
		}
	}
	return TierMid
}

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	case TierHigh:
		return "high"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// GPUOrder is the preferred facet ordering for GPU models.
var GPUOrder = []string{
	IntegratedGraphics,
	"Arc",
	"RTX 2050",
	"RTX 3050",
	"RTX 4050",
	"RTX 5050",
	"RTX 4060",
	"RTX 5060",
	"RTX 4070",
	"RTX 5070",
	"RTX 5070 Ti",
	"RTX 4080",
	"RTX 5080",
	"RTX 4090",
	"RTX 5090",
}
