package normalize

import (
	"regexp"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

var (
	oledRe      = regexp.MustCompile(`(?i)\b(?:am?)?oled\b`)
	ipsRe       = regexp.MustCompile(`(?i)\bips\b`)
	ledFamilyRe = regexp.MustCompile(`(?i)\b(ips|tn|va|wva|lcd|led|mini[\s-]?led)\b`)
)

// Panel classifies display text into OLED, IPS or LED. IPS is the default.
func Panel(raw string) enums.Panel {
	if panel, ok := FindPanel(raw); ok {
		return panel
	}
	return enums.PanelIPS
}

// FindPanel reports a recognized panel technology inside free text.
func FindPanel(text string) (enums.Panel, bool) {
	switch {
	case oledRe.MatchString(text):
		return enums.PanelOLED, true
	case ipsRe.MatchString(text):
		return enums.PanelIPS, true
	case ledFamilyRe.MatchString(text):
		return enums.PanelLED, true
	}
	return "", false
}

// PanelMatches implements the panel filter. "LED" selects every non-OLED
// backlit panel; other values match by containment in either direction.
func PanelMatches(product, selected string) bool {
	want := strings.ToLower(strings.TrimSpace(selected))
	if want == "" {
		return true
	}
	have := strings.ToLower(strings.TrimSpace(product))
	if have == "" {
		return false
	}
	if want == "led" {
		return !oledRe.MatchString(have) && ledFamilyRe.MatchString(have)
	}
	if oledRe.MatchString(have) != oledRe.MatchString(want) {
		return false
	}
	return strings.Contains(have, want) || strings.Contains(want, have)
}
