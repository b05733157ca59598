package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes to NFD, drops combining marks, and
// recomposes, turning "Crème Fraîche" into "Creme Fraiche".
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeLabel canonicalizes free-text supplier labels for exact-match
// lookups: accents stripped, lower-cased, runs of non-alphanumeric
// characters collapsed to a single space, trimmed.
func NormalizeLabel(s string) string {
	stripped, _, err := transform.String(accentStripper, s)
	if err != nil {
		// Transform failures leave the input untouched; lowercasing and
		// collapsing still apply.
		stripped = s
	}

	stripped = strings.ToLower(stripped)

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSpace := false
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		} else {
			pendingSpace = true
		}
	}

	return b.String()
}
