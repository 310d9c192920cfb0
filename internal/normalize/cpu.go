package normalize

import (
	"regexp"

	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

// DefaultCPUTier applies to unrecognized processor text.
const DefaultCPUTier = "i7"

type cpuPattern struct {
	re    *regexp.Regexp
	brand enums.CPUBrand
	tier  string
}

// Checked in order; the Ryzen AI and Ultra forms precede the bare tier tokens.
var cpuPatterns = []cpuPattern{
	{regexp.MustCompile(`\bryzen\s+(ai\s+)?(max\+?\s+)?(pro\s+)?9\b`), enums.CPUBrandAMD, "Ryzen 9"},
	{regexp.MustCompile(`\bryzen\s+(ai\s+)?(pro\s+)?7\b`), enums.CPUBrandAMD, "Ryzen 7"},
	{regexp.MustCompile(`\bryzen\s+(ai\s+)?(pro\s+)?5\b`), enums.CPUBrandAMD, "Ryzen 5"},
	{regexp.MustCompile(`\bultra\s+9\b`), enums.CPUBrandIntel, "Ultra 9"},
	{regexp.MustCompile(`\bultra\s+7\b`), enums.CPUBrandIntel, "Ultra 7"},
	{regexp.MustCompile(`\bultra\s+5\b`), enums.CPUBrandIntel, "Ultra 5"},
	{regexp.MustCompile(`\bi9\b`), enums.CPUBrandIntel, "i9"},
	{regexp.MustCompile(`\bi7\b`), enums.CPUBrandIntel, "i7"},
	{regexp.MustCompile(`\bi5\b`), enums.CPUBrandIntel, "i5"},
	{regexp.MustCompile(`\bapple\s+m1\b`), enums.CPUBrandApple, "M1"},
	{regexp.MustCompile(`\bapple\s+m2\b`), enums.CPUBrandApple, "M2"},
	{regexp.MustCompile(`\bapple\s+m3\b`), enums.CPUBrandApple, "M3"},
	{regexp.MustCompile(`\bapple\s+m4\b`), enums.CPUBrandApple, "M4"},
}

var cpuModelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:intel\s+)?core\s+ultra\s+[579]\s+(?:processor\s+)?\d{3}[a-z]{0,2}\b`),
	regexp.MustCompile(`(?i)\b(?:intel\s+)?(?:core\s+)?i[3579][\s-]\d{4,5}[a-z]{0,2}\b`),
	regexp.MustCompile(`(?i)\b(?:amd\s+)?ryzen\s+(?:ai\s+)?(?:max\+?\s+)?(?:pro\s+)?[3579]\s+(?:hx\s+)?\d{3,4}[a-z]{0,3}\b`),
	regexp.MustCompile(`(?i)\bapple\s+m[1-4](?:\s+(?:pro|max))?\b`),
}

// CPU maps raw processor text into a brand and tier. Unmatched text is Intel / i7.
func CPU(raw string) (enums.CPUBrand, string) {
	if brand, tier, ok := FindCPU(raw); ok {
		return brand, tier
	}
	return enums.CPUBrandIntel, DefaultCPUTier
}

// FindCPU reports a recognized processor brand and tier inside free text.
func FindCPU(text string) (enums.CPUBrand, string, bool) {
	lowered := lower(text)
	for _, p := range cpuPatterns {
		if p.re.MatchString(lowered) {
			return p.brand, p.tier, true
		}
	}
	return "", "", false
}

// CPUDisplay renders a brand and tier the way product cards show them.
func CPUDisplay(brand enums.CPUBrand, tier string) string {
	switch {
	case brand == enums.CPUBrandIntel:
		return "Intel Core " + tier
	case brand == "":
		return tier
	}
	return string(brand) + " " + tier
}

// FindCPUModel extracts a processor model string such as "Intel Core i7-14650HX".
func FindCPUModel(text string) (string, bool) {
	cleaned := Clean(text)
	for _, re := range cpuModelPatterns {
		if m := re.FindString(cleaned); m != "" {
			return m, true
		}
	}
	return "", false
}

// CPUTierOrder is the preferred facet ordering for CPU tiers.
var CPUTierOrder = []string{"i5", "i7", "i9", "Ultra 5", "Ultra 7", "Ultra 9", "Ryzen 5", "Ryzen 7", "Ryzen 9", "M1", "M2", "M3", "M4"}
