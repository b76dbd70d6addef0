package model

// Match tier labels recorded on ParseResult.MatchTier. Empty means no match.
const (
	MatchAlias    = "alias"    // exact alias-cache hit
	MatchOverlap  = "overlap"  // token-overlap score above threshold
	MatchKeyword  = "keyword"  // hand-authored keyword rule
	MatchSemantic = "semantic" // embedding similarity fallback
)

// ParseResult is the engine's output for a single raw title — an immutable
// value object assembled fresh per call. Callers persist it if they need to.
type ParseResult struct {
	RawTitle        string        `json:"raw_title"`
	NormalizedTitle string        `json:"normalized_title"`
	Seniority       SeniorityTier `json:"seniority"`
	// SeniorityConfidence is in [0,1]: near 1.0 for an explicit cue word,
	// ~0.5 for a numeric inference, 0.0 when no cue was found.
	SeniorityConfidence float64 `json:"seniority_confidence"`
	// RoleID references a CanonicalRole in the taxonomy snapshot the title
	// was resolved against. nil means no match — distinguishable from a
	// low-confidence match, where RoleID is set and TitleConfidence is low.
	RoleID          *int64  `json:"canonical_role_id"`
	RoleName        string  `json:"canonical_role_name,omitempty"`
	TitleConfidence float64 `json:"title_confidence"`
	// MatchTier records which matcher tier produced the role, for outcome
	// accounting ("add new canonical role" decisions live downstream).
	MatchTier string `json:"match_tier,omitempty"`
	// Count is >1 when the batch pipeline collapsed duplicate raw titles.
	Count int `json:"count,omitempty"`
}

// Matched reports whether a canonical role was resolved.
func (r ParseResult) Matched() bool {
	return r.RoleID != nil
}
