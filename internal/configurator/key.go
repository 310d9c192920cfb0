package configurator

import (
	"regexp"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
)

var (
	parenRe     = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	numberUnit  = regexp.MustCompile(`(\d)\s+(gb|tb|mb|hz|w|wh|in|inch|nits?)\b`)
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}.+]+`)
)

// Key canonicalizes option text so near-duplicates collapse together:
// "16 GB DDR5 (Dual-Channel)" and "16GB DDR5™" both become "16gb ddr5".
func Key(text string) string {
	s := strings.ToLower(normalize.Clean(text))
	s = parenRe.ReplaceAllString(s, " ")
	s = numberUnit.ReplaceAllString(s, "$1$2")
	s = punctuation.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
