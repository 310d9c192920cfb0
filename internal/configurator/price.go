package configurator

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var priceNoteRe = regexp.MustCompile(`(?i)([+\-−])?\s*(?:₹|rs\.?|inr)\s*([\d,]+(?:\.\d+)?)`)

// amount is a parsed price note. Signed notes ("+₹16,500") are relative to the
// included option; unsigned ones are absolute configuration prices.
type amount struct {
	value    decimal.Decimal
	relative bool
}

func parsePriceNote(note string) (amount, bool) {
	m := priceNoteRe.FindStringSubmatch(note)
	if m == nil {
		return amount{}, false
	}
	value, err := decimal.NewFromString(strings.ReplaceAll(m[2], ",", ""))
	if err != nil {
		return amount{}, false
	}
	if m[1] == "-" || m[1] == "−" {
		value = value.Neg()
	}
	return amount{value: value, relative: m[1] != ""}, true
}

// PriceDelta parses a signed rupee note such as "+₹16,500" or "-₹2,000".
// Unsigned or missing notes yield 0.
func PriceDelta(note string) int {
	parsed, ok := parsePriceNote(note)
	if !ok || !parsed.relative {
		return 0
	}
	return int(parsed.value.Round(0).IntPart())
}

// priceDeltas fills PriceDelta on every option of a merged category. The
// included option is 0 and the rest are measured against it.
func priceDeltas(options []Option, basePrice int) {
	reference := decimal.Zero
	base := decimal.NewFromInt(int64(basePrice))
	for _, option := range options {
		if !option.Included {
			continue
		}
		if parsed, ok := parsePriceNote(option.PriceNote); ok {
			if parsed.relative {
				reference = parsed.value
			} else {
				base = parsed.value
			}
		}
		break
	}

	for i := range options {
		if options[i].Included {
			options[i].PriceDelta = 0
			continue
		}
		parsed, ok := parsePriceNote(options[i].PriceNote)
		switch {
		case !ok:
			options[i].PriceDelta = 0
		case parsed.relative:
			options[i].PriceDelta = int(parsed.value.Sub(reference).Round(0).IntPart())
		case base.IsPositive():
			options[i].PriceDelta = int(parsed.value.Sub(base).Round(0).IntPart())
		default:
			options[i].PriceDelta = 0
		}
	}
}
