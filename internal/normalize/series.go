package normalize

import (
	"regexp"
	"strings"
)

// OtherSeries collects listings whose product line is not in the known table.
const OtherSeries = "Other"

type seriesPattern struct {
	re   *regexp.Regexp
	name string
}

// Longer names first so "OMEN MAX" wins over "OMEN".
var seriesPatterns = []seriesPattern{
	{regexp.MustCompile(`(?i)\bomen\s+max\b`), "OMEN MAX"},
	{regexp.MustCompile(`(?i)\bomen\s+transcend\b`), "OMEN Transcend"},
	{regexp.MustCompile(`(?i)\bomen\b`), "OMEN"},
	{regexp.MustCompile(`(?i)\bvictus\b`), "Victus"},
	{regexp.MustCompile(`(?i)\bpavilion\b`), "Pavilion"},
	{regexp.MustCompile(`(?i)\benvy\b`), "Envy"},
	{regexp.MustCompile(`(?i)\bspectre\b`), "Spectre"},
	{regexp.MustCompile(`(?i)\brog\s+strix\s+scar\b`), "ROG Strix SCAR"},
	{regexp.MustCompile(`(?i)\brog\s+strix\b`), "ROG Strix"},
	{regexp.MustCompile(`(?i)\brog\s+zephyrus\b`), "ROG Zephyrus"},
	{regexp.MustCompile(`(?i)\brog\s+flow\b`), "ROG Flow"},
	{regexp.MustCompile(`(?i)\btuf\b`), "TUF Gaming"},
	{regexp.MustCompile(`(?i)\bvivobook\b`), "Vivobook"},
	{regexp.MustCompile(`(?i)\bzenbook\b`), "Zenbook"},
	{regexp.MustCompile(`(?i)\bproart\b`), "ProArt"},
	{regexp.MustCompile(`(?i)\blegion\s+pro\b`), "Legion Pro"},
	{regexp.MustCompile(`(?i)\blegion\s+slim\b`), "Legion Slim"},
	{regexp.MustCompile(`(?i)\blegion\b`), "Legion"},
	{regexp.MustCompile(`(?i)\bloq\b`), "LOQ"},
	{regexp.MustCompile(`(?i)\bideapad\b`), "IdeaPad"},
	{regexp.MustCompile(`(?i)\bthinkpad\b`), "ThinkPad"},
	{regexp.MustCompile(`(?i)\bthinkbook\b`), "ThinkBook"},
	{regexp.MustCompile(`(?i)\byoga\b`), "Yoga"},
	{regexp.MustCompile(`(?i)\balienware\b`), "Alienware"},
	{regexp.MustCompile(`(?i)\bxps\b`), "XPS"},
	{regexp.MustCompile(`(?i)\binspiron\b`), "Inspiron"},
	{regexp.MustCompile(`(?i)\blatitude\b`), "Latitude"},
	{regexp.MustCompile(`\bG[\s-]?1[5-6]\b|\b[Gg]\s+[Ss]eries\b`), "G Series"},
	{regexp.MustCompile(`(?i)\bpredator\s+helios\s+neo\b`), "Predator Helios Neo"},
	{regexp.MustCompile(`(?i)\bpredator\s+helios\b`), "Predator Helios"},
	{regexp.MustCompile(`(?i)\bpredator\s+triton\b`), "Predator Triton"},
	{regexp.MustCompile(`(?i)\bnitro\s+v\b`), "Nitro V"},
	{regexp.MustCompile(`(?i)\bnitro\b`), "Nitro"},
	{regexp.MustCompile(`(?i)\baspire\b`), "Aspire"},
	{regexp.MustCompile(`(?i)\bswift\b`), "Swift"},
	{regexp.MustCompile(`(?i)\btitan\b`), "Titan"},
	{regexp.MustCompile(`(?i)\braider\b`), "Raider"},
	{regexp.MustCompile(`(?i)\bvector\b`), "Vector"},
	{regexp.MustCompile(`(?i)\bstealth\b`), "Stealth"},
	{regexp.MustCompile(`(?i)\bcrosshair\b`), "Crosshair"},
	{regexp.MustCompile(`(?i)\bsword\b`), "Sword"},
	{regexp.MustCompile(`(?i)\bkatana\b`), "Katana"},
	{regexp.MustCompile(`(?i)\bcyborg\b`), "Cyborg"},
	{regexp.MustCompile(`(?i)\bmacbook\s+air\b`), "MacBook Air"},
	{regexp.MustCompile(`(?i)\bmacbook\s+pro\b`), "MacBook Pro"},
	{regexp.MustCompile(`(?i)\bgalaxy\s+book`), "Galaxy Book"},
}

// gSeriesRe is the alias rule behind the "G Series" filter value.
var gSeriesRe = regexp.MustCompile(`G[\s-]?\d`)

// Series finds the canonical product line in a listing title.
func Series(text string) string {
	cleaned := Clean(text)
	for _, p := range seriesPatterns {
		if p.re.MatchString(cleaned) {
			return p.name
		}
	}
	return OtherSeries
}

// SeriesMatches implements the series filter: the product series must equal,
// start with or contain the selection, plus brand-specific aliases. A
// narrower selection never matches the broader family.
func SeriesMatches(product, selected string) bool {
	want := strings.ToLower(strings.TrimSpace(selected))
	if want == "" {
		return true
	}
	have := strings.ToLower(strings.TrimSpace(product))
	if have == "" {
		return false
	}
	switch want {
	case "g series":
		return have == want || gSeriesRe.MatchString(strings.TrimSpace(product))
	case "omen":
		return strings.HasPrefix(have, "omen")
	}
	return have == want || strings.HasPrefix(have, want) || strings.Contains(have, want)
}
