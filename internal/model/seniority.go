package model

// SeniorityTier is a coarse rank bucket inferred from title text.
// Tiers are ordered: comparing two tiers with < / > compares seniority rank.
type SeniorityTier int

const (
	TierUnknown SeniorityTier = iota
	TierEntry
	TierMid
	TierSenior
	TierStaff     // staff / lead
	TierPrincipal // principal / director
	TierExecutive
)

var tierNames = map[SeniorityTier]string{
	TierUnknown:   "unknown",
	TierEntry:     "entry",
	TierMid:       "mid",
	TierSenior:    "senior",
	TierStaff:     "staff",
	TierPrincipal: "principal",
	TierExecutive: "executive",
}

// String returns the short serialized label consumed downstream.
func (t SeniorityTier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText serializes the tier as its short label.
func (t SeniorityTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a short label, so serialized results read back.
// Unrecognized labels degrade to TierUnknown rather than failing the
// decode, same as ParseTier.
func (t *SeniorityTier) UnmarshalText(b []byte) error {
	*t = ParseTier(string(b))
	return nil
}

// ParseTier converts a short label back to a SeniorityTier.
// Unrecognized labels map to TierUnknown.
func ParseTier(s string) SeniorityTier {
	for tier, name := range tierNames {
		if name == s {
			return tier
		}
	}
	return TierUnknown
}
