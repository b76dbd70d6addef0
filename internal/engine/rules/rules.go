// Package rules holds the curated lexical tables the engine matches against:
// acronym casings, minor words, stopwords, the seniority lexicon, and the
// keyword fallback rules. The tables are plain data — versioned and swappable
// independently of the pipeline code — with built-in defaults in default.go.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wagescope/ladder/internal/model"
)

// KeywordRule maps titles containing certain terms to a canonical role by
// name. A rule fires when the title contains every AllOf term and, when AnyOf
// is non-empty, at least one AnyOf term. Terms are matched against the
// folded match key, so they must be lowercase.
type KeywordRule struct {
	Role  string   `yaml:"role"`
	AllOf []string `yaml:"all_of,omitempty"`
	AnyOf []string `yaml:"any_of,omitempty"`
}

// Rules is one versioned set of lexical tables.
type Rules struct {
	Version string `yaml:"version"`

	// Acronyms maps the upper-cased token to its canonical casing,
	// e.g. "RN" -> "RN", "PHD" -> "PhD".
	Acronyms map[string]string `yaml:"acronyms"`

	// MinorWords stay lowercase mid-title ("VP of Sales").
	MinorWords []string `yaml:"minor_words"`

	// Stopwords are dropped before token-overlap scoring.
	Stopwords []string `yaml:"stopwords"`

	// Seniority maps a cue token to a tier label ("sr" -> "senior").
	Seniority map[string]string `yaml:"seniority"`

	// Keywords are evaluated in order; the first hit wins.
	Keywords []KeywordRule `yaml:"keywords"`
}

// LoadFile reads a rules file in YAML format.
func LoadFile(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("rules: %w", err)
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("rules: parse %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, fmt.Errorf("rules: %s: %w", path, err)
	}
	return r, nil
}

// Validate checks internal consistency of the tables.
func (r Rules) Validate() error {
	for token, label := range r.Seniority {
		if token == "" {
			return fmt.Errorf("seniority table has an empty cue token")
		}
		if model.ParseTier(label) == model.TierUnknown && label != "unknown" {
			return fmt.Errorf("seniority cue %q maps to unknown tier label %q", token, label)
		}
	}
	for i, kw := range r.Keywords {
		if kw.Role == "" {
			return fmt.Errorf("keyword rule %d has no role", i)
		}
		if len(kw.AllOf) == 0 && len(kw.AnyOf) == 0 {
			return fmt.Errorf("keyword rule %d for %q has no terms", i, kw.Role)
		}
	}
	return nil
}

// SeniorityTiers returns the compiled cue-token -> tier lookup.
func (r Rules) SeniorityTiers() map[string]model.SeniorityTier {
	out := make(map[string]model.SeniorityTier, len(r.Seniority))
	for token, label := range r.Seniority {
		out[token] = model.ParseTier(label)
	}
	return out
}
