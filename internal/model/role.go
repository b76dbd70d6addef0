package model

// CanonicalRole is a single normalized occupation entry in the reference
// taxonomy. Roles are loaded once per process and never mutated; adding a
// role means building a new taxonomy snapshot out-of-band and swapping it in.
//
// Invariants: Name is unique across the taxonomy, ID is never reused.
type CanonicalRole struct {
	ID             int64    `yaml:"id"`
	Name           string   `yaml:"name"`
	OccupationCode string   `yaml:"occupation_code,omitempty"` // external classification code (e.g. SOC)
	OnetCode       string   `yaml:"onet_code,omitempty"`
	RoleFamily     string   `yaml:"role_family,omitempty"`
	Category       string   `yaml:"category,omitempty"`
	TypicalSkills  []string `yaml:"typical_skills,omitempty"`
	Aliases        []string `yaml:"aliases,omitempty"` // known raw title strings that map to this role
}
