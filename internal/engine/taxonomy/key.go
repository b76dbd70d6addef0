package taxonomy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents removes combining diacritical marks after NFD decomposition,
// so "coördinator" and "coordinator" fold to the same key.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Key folds a title or alias string into its canonical lookup form:
// lowercase, accents stripped, every non-alphanumeric run collapsed to a
// single space. Both sides of the alias cache — registration at build time
// and lookup at match time — go through this fold.
func Key(s string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(folded))
	space := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		} else {
			space = true
		}
	}
	return b.String()
}

// Tokens splits a string's folded key on spaces and drops stopwords,
// deduplicating repeated tokens. The result is the unit of comparison for
// overlap scoring.
func Tokens(s string, stop map[string]struct{}) []string {
	fields := strings.Fields(Key(s))
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, skip := stop[f]; skip {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
