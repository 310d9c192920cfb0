package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

var (
	inchRe    = regexp.MustCompile(`(?i)\b(\d{2}(?:\.\d{1,2})?)\s*(?:"|''|”|-?\s*inch(?:es)?\b|-?\s*in\b)`)
	cmRe      = regexp.MustCompile(`(?i)\b(\d{2}(?:\.\d{1,2})?)\s*cm\b`)
	ramRe     = regexp.MustCompile(`(?i)\b(\d{1,3})\s*gb\s*(?:of\s+)?(?:(?:lp)?ddr\d+x?|ram|memory|unified)`)
	storageRe = regexp.MustCompile(`(?i)\b(\d{1,4})\s*(tb|gb)\s*(?:m\.2\s*)?(pcie|nvme|ssd|hdd|gen\s*\d|storage)`)
	refreshRe = regexp.MustCompile(`(?i)\b(\d{2,3})\s*hz\b`)
	priceRe   = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
	ratingRe  = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ScreenSize finds a diagonal in inches; centimetre values are converted.
func ScreenSize(text string) (float64, bool) {
	cleaned := Clean(text)
	if m := inchRe.FindStringSubmatch(cleaned); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= 10 && v <= 19 {
			return v, true
		}
	}
	if m := cmRe.FindStringSubmatch(cleaned); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			inches := math.Round(v/2.54*10) / 10
			if inches >= 10 && inches <= 19 {
				return inches, true
			}
		}
	}
	return 0, false
}

// RAM finds installed memory in GB.
func RAM(text string) (int, bool) {
	m := ramRe.FindStringSubmatch(Clean(text))
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil || v < 4 || v > 128 {
		return 0, false
	}
	return v, true
}

// Storage finds the primary drive capacity in GB and its type.
func Storage(text string) (int, enums.StorageType, bool) {
	m := storageRe.FindStringSubmatch(Clean(text))
	if m == nil {
		return 0, "", false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil || v <= 0 {
		return 0, "", false
	}
	if strings.EqualFold(m[2], "tb") {
		v *= 1024
	}
	kind := enums.StorageTypeSSD
	if strings.EqualFold(m[3], "hdd") {
		kind = enums.StorageTypeHDD
	}
	return v, kind, true
}

// StorageSummary renders capacity the way cards show it, e.g. "1TB SSD".
func StorageSummary(gb int, kind enums.StorageType) string {
	size := strconv.Itoa(gb) + "GB"
	if gb >= 1024 && gb%1024 == 0 {
		size = strconv.Itoa(gb/1024) + "TB"
	}
	if kind == "" {
		return size
	}
	return size + " " + string(kind)
}

// Refresh finds a panel refresh rate in Hz.
func Refresh(text string) (int, bool) {
	m := refreshRe.FindStringSubmatch(Clean(text))
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil || v < 30 || v > 500 {
		return 0, false
	}
	return v, true
}

// Price reads the first amount in a price label such as "₹1,09,990.00".
func Price(text string) (int, bool) {
	m := priceRe.FindString(Clean(text))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return int(math.Round(v)), true
}

// Rating reads a star rating. Percentages ("88%") are scaled to five stars.
func Rating(text string) (float64, bool) {
	cleaned := Clean(text)
	m := ratingRe.FindString(cleaned)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	if strings.Contains(cleaned, "%") || v > 5 {
		v = v / 20
	}
	if v <= 0 || v > 5 {
		return 0, false
	}
	return math.Round(v*10) / 10, true
}
