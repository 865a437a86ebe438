package lib

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify normalizes a name into its URL-safe slug: lowercase ASCII,
// diacritics stripped, anything outside [a-z0-9 -] dropped, whitespace runs
// collapsed to single hyphens, no leading/trailing hyphens.
// Slugify("Tortas Clásicas") == "tortas-clasicas".
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))

	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	// whitespace runs -> single hyphen, then collapse hyphen runs
	s = strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	return strings.Trim(s, "-")
}
