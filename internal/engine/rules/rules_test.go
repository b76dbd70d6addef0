package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagescope/ladder/internal/model"
)

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestSeniorityTiers(t *testing.T) {
	tiers := Default().SeniorityTiers()

	tests := []struct {
		cue  string
		want model.SeniorityTier
	}{
		{"intern", model.TierEntry},
		{"jr", model.TierEntry},
		{"sr", model.TierSenior},
		{"lead", model.TierStaff},
		{"director", model.TierPrincipal},
		{"chief", model.TierExecutive},
		{"vp", model.TierExecutive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tiers[tt.cue], "cue=%q", tt.cue)
	}
}

func TestValidateRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		r    Rules
	}{
		{"empty cue token", Rules{Seniority: map[string]string{"": "entry"}}},
		{"unknown tier label", Rules{Seniority: map[string]string{"sr": "very senior"}}},
		{"keyword rule without role", Rules{Keywords: []KeywordRule{{AnyOf: []string{"nurse"}}}}},
		{"keyword rule without terms", Rules{Keywords: []KeywordRule{{Role: "Teacher"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.r.Validate())
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	data := `version: "2026.3"
acronyms:
  RN: RN
  PHD: PhD
minor_words: [of, the]
stopwords: [of, the, i, ii]
seniority:
  sr: senior
  chief: executive
keywords:
  - role: Registered Nurse
    any_of: [nurse, nursing]
  - role: Software Engineer
    all_of: [software]
    any_of: [engineer, developer]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2026.3", r.Version)
	assert.Equal(t, "PhD", r.Acronyms["PHD"])
	assert.Equal(t, model.TierSenior, r.SeniorityTiers()["sr"])
	require.Len(t, r.Keywords, 2)
	assert.Equal(t, []string{"software"}, r.Keywords[1].AllOf)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	// A parseable file with an invalid table still fails.
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("seniority:\n  sr: sideways\n"), 0o644))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}
