package normalize

import (
	"math"
	"regexp"
	"strconv"
)

var (
	cellRe     = regexp.MustCompile(`(?i)\b(\d{1,2})\s*-?\s*cells?\b`)
	whRe       = regexp.MustCompile(`(?i)\b(\d{2,3}(?:\.\d+)?)\s*-?\s*w\s*h(?:rs?)?\b`)
	liPolyRe   = regexp.MustCompile(`(?i)\b(?:li(?:thium)?[\s-]*po(?:ly(?:mer)?)?|lipo)\b`)
	liIonRe    = regexp.MustCompile(`(?i)\bli(?:thium)?[\s-]*ion\b`)
	chemistryR = regexp.MustCompile(`Li-(?:ion|polymer)`)
)

// BatteryText standardizes free-form battery descriptions, e.g.
// "4 Cell 90 WHr lithium ion" becomes "4-cell 90Wh Li-ion".
func BatteryText(raw string) string {
	s := Clean(raw)
	s = cellRe.ReplaceAllString(s, "${1}-cell")
	s = whRe.ReplaceAllString(s, "${1}Wh")
	s = liPolyRe.ReplaceAllString(s, "Li-polymer")
	s = liIonRe.ReplaceAllString(s, "Li-ion")
	return s
}

// BatteryWh extracts the rated capacity in watt-hours, 0 when absent.
func BatteryWh(raw string) int {
	m := whRe.FindStringSubmatch(Clean(raw))
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return int(math.Round(value))
}

// BatteryChemistry returns "Li-ion" or "Li-polymer" when the text names one.
func BatteryChemistry(raw string) string {
	return chemistryR.FindString(BatteryText(raw))
}
