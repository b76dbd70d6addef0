package ladder

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	defer l.Close()

	assert.NotEmpty(t, l.Roles())
}

func TestParseTitle(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	defer l.Close()

	tests := []struct {
		name          string
		raw           string
		wantTitle     string
		wantSeniority string
		wantMatched   bool
		wantRole      string
	}{
		{
			name:          "full resolution",
			raw:           "SENIOR SOFTWARE ENGINEER II",
			wantTitle:     "Senior Software Engineer",
			wantSeniority: SenioritySenior,
			wantMatched:   true,
			wantRole:      "Software Engineer",
		},
		{
			name:          "seniority only",
			raw:           "Lead Zamboni Driver",
			wantTitle:     "Lead Zamboni Driver",
			wantSeniority: SeniorityStaff,
			wantMatched:   false,
		},
		{
			name:          "nothing resolves",
			raw:           "Xylophone Whisperer",
			wantTitle:     "Xylophone Whisperer",
			wantSeniority: SeniorityUnknown,
			wantMatched:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.ParseTitle(tt.raw)

			assert.Equal(t, tt.raw, got.RawTitle)
			assert.Equal(t, tt.wantTitle, got.NormalizedTitle)
			assert.Equal(t, tt.wantSeniority, got.Seniority)
			assert.Equal(t, tt.wantMatched, got.Matched())
			if tt.wantMatched {
				assert.Equal(t, tt.wantRole, got.RoleName)
				assert.Greater(t, got.TitleConfidence, 0.0)
			} else {
				assert.Nil(t, got.RoleID)
			}
		})
	}
}

func TestParseTitles(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	defer l.Close()

	raws := []string{"Registered Nurse", "Custodian", "Attorney"}
	results := l.ParseTitles(raws)
	require.Len(t, results, len(raws))
	for i, r := range results {
		assert.Equal(t, raws[i], r.RawTitle)
		assert.True(t, r.Matched())
	}
}

func TestWithRoles(t *testing.T) {
	l, err := New(WithRoles([]Role{
		{ID: 1, Name: "Glassblower", Aliases: []string{"glass artisan"}},
	}))
	require.NoError(t, err)
	defer l.Close()

	got := l.ParseTitle("Glass Artisan")
	require.True(t, got.Matched())
	assert.Equal(t, "Glassblower", got.RoleName)
	assert.Equal(t, MatchAlias, got.MatchTier)

	// The default taxonomy is not loaded alongside.
	assert.False(t, l.ParseTitle("Registered Nurse").Matched())
}

func TestWithTaxonomyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	data := `roles:
  - id: 1
    name: Beekeeper
    aliases: [apiarist]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	l, err := New(WithTaxonomyFile(path))
	require.NoError(t, err)
	defer l.Close()

	got := l.ParseTitle("Apiarist")
	require.True(t, got.Matched())
	assert.Equal(t, "Beekeeper", got.RoleName)
}

func TestNewRejectsEmptyTaxonomy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roles: []\n"), 0o644))

	_, err := New(WithTaxonomyFile(path))
	assert.Error(t, err)
}

func TestReloadTaxonomy(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	defer l.Close()

	require.True(t, l.ParseTitle("Registered Nurse").Matched())

	require.NoError(t, l.ReloadTaxonomy([]Role{
		{ID: 500, Name: "Falconer", Aliases: []string{"bird handler"}},
	}))

	assert.False(t, l.ParseTitle("Registered Nurse").Matched())
	got := l.ParseTitle("Bird Handler")
	require.True(t, got.Matched())
	assert.Equal(t, int64(500), *got.RoleID)
	require.Len(t, l.Roles(), 1)
	assert.Equal(t, "Falconer", l.Roles()[0].Name)
}

func TestReloadTaxonomyRejectsBadSetKeepsServing(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	defer l.Close()

	assert.Error(t, l.ReloadTaxonomy(nil))
	// A failed reload leaves the previous snapshot in place.
	assert.True(t, l.ParseTitle("Registered Nurse").Matched())
}

func TestConcurrentParsing(t *testing.T) {
	l, err := New()
	require.NoError(t, err)
	defer l.Close()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				got := l.ParseTitle("Senior Registered Nurse")
				assert.True(t, got.Matched())
				assert.Equal(t, SenioritySenior, got.Seniority)
			}
		}()
	}
	wg.Wait()
}
