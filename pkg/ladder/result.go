package ladder

import "github.com/wagescope/ladder/internal/model"

// Seniority labels, ordered from entry to executive. These are the stable
// serialized forms consumed downstream.
const (
	SeniorityUnknown   = "unknown"
	SeniorityEntry     = "entry"
	SeniorityMid       = "mid"
	SenioritySenior    = "senior"
	SeniorityStaff     = "staff"
	SeniorityPrincipal = "principal"
	SeniorityExecutive = "executive"
)

// Match tier labels on Result.MatchTier. Empty means no role resolved.
const (
	MatchAlias    = model.MatchAlias
	MatchOverlap  = model.MatchOverlap
	MatchKeyword  = model.MatchKeyword
	MatchSemantic = model.MatchSemantic
)

// Result is the public parse result — the stable type consumed by ingestion
// scripts. Internal representations may evolve independently.
type Result struct {
	RawTitle        string `json:"raw_title"`
	NormalizedTitle string `json:"normalized_title"`

	Seniority string `json:"seniority"`
	// SeniorityConfidence is in [0,1]: near 1.0 for an explicit cue word,
	// ~0.5 for a numeric inference, 0.0 when no cue was found.
	SeniorityConfidence float64 `json:"seniority_confidence"`

	// RoleID is nil when no canonical role resolved. A low-confidence match
	// keeps RoleID set with a small TitleConfidence — callers apply their
	// own acceptance threshold.
	RoleID          *int64  `json:"canonical_role_id"`
	RoleName        string  `json:"canonical_role_name,omitempty"`
	TitleConfidence float64 `json:"title_confidence"`
	MatchTier       string  `json:"match_tier,omitempty"`
}

// Matched reports whether a canonical role was resolved.
func (r Result) Matched() bool {
	return r.RoleID != nil
}

// Role is a canonical occupation entry in the reference taxonomy.
type Role struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	OccupationCode string   `json:"occupation_code,omitempty"`
	OnetCode       string   `json:"onet_code,omitempty"`
	RoleFamily     string   `json:"role_family,omitempty"`
	Category       string   `json:"category,omitempty"`
	TypicalSkills  []string `json:"typical_skills,omitempty"`
	Aliases        []string `json:"aliases,omitempty"`
}

func resultFromInternal(r model.ParseResult) Result {
	return Result{
		RawTitle:            r.RawTitle,
		NormalizedTitle:     r.NormalizedTitle,
		Seniority:           r.Seniority.String(),
		SeniorityConfidence: r.SeniorityConfidence,
		RoleID:              r.RoleID,
		RoleName:            r.RoleName,
		TitleConfidence:     r.TitleConfidence,
		MatchTier:           r.MatchTier,
	}
}

func roleFromInternal(r model.CanonicalRole) Role {
	return Role{
		ID:             r.ID,
		Name:           r.Name,
		OccupationCode: r.OccupationCode,
		OnetCode:       r.OnetCode,
		RoleFamily:     r.RoleFamily,
		Category:       r.Category,
		TypicalSkills:  r.TypicalSkills,
		Aliases:        r.Aliases,
	}
}

func roleToInternal(r Role) model.CanonicalRole {
	return model.CanonicalRole{
		ID:             r.ID,
		Name:           r.Name,
		OccupationCode: r.OccupationCode,
		OnetCode:       r.OnetCode,
		RoleFamily:     r.RoleFamily,
		Category:       r.Category,
		TypicalSkills:  r.TypicalSkills,
		Aliases:        r.Aliases,
	}
}
