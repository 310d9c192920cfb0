// Package normalize maps raw vendor text into the catalog's canonical values.
// Every function here is total: unrecognized input falls back to a documented
// default or to cleaned verbatim text, never to an error.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// NFKC rewrites ™ as "TM", so the symbols go first.
	symbolReplacer = strings.NewReplacer("™", " ", "®", " ", "©", " ", "(R)", " ", "(TM)", " ")
	spaceRe        = regexp.MustCompile(`\s+`)
)

// Clean strips trademark symbols, folds compatibility characters and collapses whitespace.
func Clean(raw string) string {
	s := symbolReplacer.Replace(raw)
	s = norm.NFKC.String(s)
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func lower(raw string) string {
	return strings.ToLower(Clean(raw))
}
