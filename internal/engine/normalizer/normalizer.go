// Package normalizer implements the deterministic lexical transform applied
// to every raw title before seniority extraction and role matching: trailing
// level-indicator stripping, acronym-aware title casing, and whitespace
// cleanup. Normalize is a pure function and a stable fixed point —
// Normalize(Normalize(x)) == Normalize(x).
package normalizer

import (
	"strings"
	"unicode"
)

// maxTitleRunes bounds per-call cost on pathological input. Longer titles
// are truncated at a word boundary, not rejected — a truncated title can
// still resolve, an error cannot.
const maxTitleRunes = 300

// romanLevels are the standalone roman numerals treated as trailing level
// indicators (I through X).
var romanLevels = map[string]struct{}{
	"i": {}, "ii": {}, "iii": {}, "iv": {}, "v": {},
	"vi": {}, "vii": {}, "viii": {}, "ix": {}, "x": {},
}

// Normalizer rebuilds raw titles in canonical display casing using the
// curated acronym and minor-word tables. Safe for concurrent use.
type Normalizer struct {
	acronyms map[string]string   // upper-cased token -> canonical casing
	minor    map[string]struct{} // words kept lowercase mid-title
}

// New creates a Normalizer from the rule tables. Acronym keys are expected
// upper-cased, minor words lowercase.
func New(acronyms map[string]string, minorWords []string) *Normalizer {
	minor := make(map[string]struct{}, len(minorWords))
	for _, w := range minorWords {
		minor[strings.ToLower(w)] = struct{}{}
	}
	acr := make(map[string]string, len(acronyms))
	for k, v := range acronyms {
		acr[strings.ToUpper(k)] = v
	}
	return &Normalizer{acronyms: acr, minor: minor}
}

// Normalize transforms a raw title into canonical display form.
// It never fails; empty input comes back unchanged.
func (n *Normalizer) Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	s := truncate(raw)

	// Level stripping runs first, on the original-case string, so a pure
	// acronym left behind ("RN" in "RN 2") is still recognized afterwards,
	// and an acronym-plus-digit compound ("RN2") is never split. Stripping
	// loops: "Clerk II 2" sheds both trailing level tokens, keeping
	// Normalize a fixed point.
	fields := strings.Fields(s)
	for len(fields) > 1 && isLevelToken(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}

	for i, tok := range fields {
		lower := strings.ToLower(tok)
		// An interior roman numeral ("Engineer II Infrastructure") is kept
		// upper-cased; only the trailing one is level noise.
		if _, roman := romanLevels[lower]; roman {
			fields[i] = strings.ToUpper(lower)
			continue
		}
		fields[i] = n.renderToken(lower, i == 0)
	}
	return strings.Join(fields, " ")
}

// renderToken applies acronym/minor-word/title casing to one token,
// recursing into slash- and hyphen-joined sub-parts so "ai/ml" becomes
// "AI/ML" and "self-employed" becomes "Self-Employed".
func (n *Normalizer) renderToken(tok string, first bool) string {
	var b strings.Builder
	b.Grow(len(tok))

	start := 0
	partFirst := first
	for i, r := range tok {
		if r != '/' && r != '-' {
			continue
		}
		b.WriteString(n.casePart(tok[start:i], partFirst))
		b.WriteRune(r)
		start = i + len(string(r))
		// Sub-parts after a delimiter are never "first": "of-counsel"
		// mid-title keeps its "of" lowercase.
		partFirst = false
	}
	b.WriteString(n.casePart(tok[start:], partFirst))
	return b.String()
}

// casePart picks the casing for a single delimiter-free part, in order of
// precedence: curated acronym, minor word (non-first position), title case.
func (n *Normalizer) casePart(part string, first bool) string {
	if part == "" {
		return part
	}
	if canonical, ok := n.acronyms[strings.ToUpper(part)]; ok {
		return canonical
	}
	if _, ok := n.minor[part]; ok && !first {
		return part
	}
	runes := []rune(part)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// isLevelToken reports whether the token is a standalone level indicator:
// a single digit 1-9 or a roman numeral I-X in any case. Digits embedded in
// words ("24/7") never reach here — the token must stand alone.
func isLevelToken(tok string) bool {
	if len(tok) == 1 && tok[0] >= '1' && tok[0] <= '9' {
		return true
	}
	_, ok := romanLevels[strings.ToLower(tok)]
	return ok
}

// truncate caps the title at maxTitleRunes, cutting back to the last word
// boundary when one exists inside the cap.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxTitleRunes {
		return s
	}
	cut := string(runes[:maxTitleRunes])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut
}
