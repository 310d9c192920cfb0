package normalize

import (
	"regexp"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

type resolutionAlias struct {
	re  *regexp.Regexp
	res enums.Resolution
}

// Ordered from the highest class down so "3.2K" never reads as "2K".
var resolutionAliases = []resolutionAlias{
	{regexp.MustCompile(`(?i)\b3840\s*[x×*]\s*2(160|400)\b|\bw?uhd\+?|\b4k\b|\b2160p\b`), enums.Resolution4K},
	{regexp.MustCompile(`(?i)\b(2880\s*[x×*]\s*1[68]\d\d|3072\s*[x×*]\s*1920|3200\s*[x×*]\s*2000|3456\s*[x×*]\s*2160)\b|\b(2\.8|3\.2|3\.5|3)k\b`), enums.Resolution3K},
	{regexp.MustCompile(`(?i)\b2560\s*[x×*]\s*1(440|600)\b|\bw?qhd\+?|\bwqxga\b|\b1440p\b|\b2\.5k\b|\b2k\b`), enums.Resolution2K},
	{regexp.MustCompile(`(?i)\b1920\s*[x×*]\s*1(080|200)\b|\bfhd\+?|\bfull\s*hd\b|\bwuxga\b|\b1080p\b`), enums.ResolutionFHD},
}

var uhdGraphicsRe = regexp.MustCompile(`(?i)\buhd\s+graphics\b`)

// Resolution canonicalizes resolution text. QHD folds into 2K; unrecognized text
// is returned trimmed and upper-cased.
func Resolution(raw string) enums.Resolution {
	cleaned := Clean(raw)
	if res, ok := FindResolution(cleaned); ok {
		return res
	}
	return enums.Resolution(strings.ToUpper(cleaned))
}

// FindResolution reports a recognized resolution class inside free text.
func FindResolution(text string) (enums.Resolution, bool) {
	text = uhdGraphicsRe.ReplaceAllString(text, " ")
	for _, alias := range resolutionAliases {
		if alias.re.MatchString(text) {
			return alias.res, true
		}
	}
	return "", false
}

// ResolutionMatches compares a stored value and a selected filter value after
// canonicalizing both, so "QHD" selects "2K" products.
func ResolutionMatches(product, selected string) bool {
	want := Resolution(selected)
	if want == "" {
		return true
	}
	return Resolution(product) == want
}
