// Package seniority assigns a seniority tier to a normalized title from
// surface cues — explicit words ("Senior", "Chief") anywhere in the title,
// or interior numerals as a weaker positional signal — and returns the
// residual title with the cue tokens removed for the role matcher.
package seniority

import (
	"strconv"
	"strings"

	"github.com/wagescope/ladder/internal/model"
)

// Confidence levels by cue kind. An explicit lexicon word is near-certain;
// a bare numeral is only a magnitude heuristic.
const (
	wordConfidence    = 0.9
	numericConfidence = 0.5
)

// romanValues maps interior roman-numeral tokens to their magnitude.
// Trailing numerals never reach the extractor — the normalizer strips them.
var romanValues = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5,
	"vi": 6, "vii": 7, "viii": 8, "ix": 9, "x": 10,
}

// Extractor classifies titles into seniority tiers using a fixed cue lexicon.
// Safe for concurrent use.
type Extractor struct {
	cues map[string]model.SeniorityTier
}

// New creates an Extractor from a cue-token -> tier lookup. Cue tokens are
// expected lowercase.
func New(cues map[string]model.SeniorityTier) *Extractor {
	lower := make(map[string]model.SeniorityTier, len(cues))
	for token, tier := range cues {
		lower[strings.ToLower(token)] = tier
	}
	return &Extractor{cues: lower}
}

// Extract scans the normalized title for seniority cues. When several cues
// are present the highest tier wins ("Senior Director" resolves to the
// Principal bucket). The residual has every cue token removed so the role
// matcher sees a cleaner string. Absence of a cue is a normal outcome:
// TierUnknown with confidence 0.0, residual unchanged.
func (e *Extractor) Extract(normalized string) (model.SeniorityTier, float64, string) {
	if normalized == "" {
		return model.TierUnknown, 0, normalized
	}

	fields := strings.Fields(normalized)
	residual := make([]string, 0, len(fields))

	wordTier := model.TierUnknown
	numTier := model.TierUnknown
	wordHit, numHit := false, false

	for _, tok := range fields {
		key := strings.ToLower(strings.Trim(tok, ".,"))

		if tier, ok := e.cues[key]; ok {
			wordHit = true
			if tier > wordTier {
				wordTier = tier
			}
			continue // cue consumed, not part of the residual
		}

		if tier, ok := numericTier(key); ok {
			numHit = true
			if tier > numTier {
				numTier = tier
			}
			continue
		}

		residual = append(residual, tok)
	}

	rest := strings.Join(residual, " ")
	switch {
	case wordHit:
		// An explicit word always outranks a numeral elsewhere in the title.
		return wordTier, wordConfidence, rest
	case numHit:
		return numTier, numericConfidence, rest
	default:
		return model.TierUnknown, 0, rest
	}
}

// numericTier maps an interior level numeral to a coarse rank by magnitude:
// 1 is entry, 2-3 mid, 4-5 senior, 6+ staff.
func numericTier(tok string) (model.SeniorityTier, bool) {
	level, ok := romanValues[tok]
	if !ok {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > 10 {
			return model.TierUnknown, false
		}
		level = n
	}
	switch {
	case level <= 1:
		return model.TierEntry, true
	case level <= 3:
		return model.TierMid, true
	case level <= 5:
		return model.TierSenior, true
	default:
		return model.TierStaff, true
	}
}
