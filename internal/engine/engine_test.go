package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagescope/ladder/internal/engine/matcher"
	"github.com/wagescope/ladder/internal/engine/normalizer"
	"github.com/wagescope/ladder/internal/engine/rules"
	"github.com/wagescope/ladder/internal/engine/seniority"
	"github.com/wagescope/ladder/internal/engine/taxonomy"
	"github.com/wagescope/ladder/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	r := rules.Default()
	snap, err := taxonomy.New(taxonomy.DefaultRoles(), r)
	require.NoError(t, err)
	return New(
		normalizer.New(r.Acronyms, r.MinorWords),
		seniority.New(r.SeniorityTiers()),
		matcher.New(),
		snap,
	)
}

func TestProcess(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name           string
		raw            string
		wantNormalized string
		wantSeniority  model.SeniorityTier
		wantRoleID     int64 // 0 means expect no match
		wantTier       string
	}{
		{
			name:           "alias hit with seniority",
			raw:            "SENIOR SOFTWARE ENGINEER II",
			wantNormalized: "Senior Software Engineer",
			wantSeniority:  model.TierSenior,
			wantRoleID:     1,
			wantTier:       model.MatchAlias,
		},
		{
			name:           "bare acronym",
			raw:            "rn",
			wantNormalized: "RN",
			wantSeniority:  model.TierUnknown,
			wantRoleID:     7,
			wantTier:       model.MatchAlias,
		},
		{
			name:           "trailing level stripped",
			raw:            "IT MANAGER I",
			wantNormalized: "IT Manager",
			wantSeniority:  model.TierUnknown,
			wantRoleID:     20,
			wantTier:       model.MatchAlias,
		},
		{
			name:           "executive cue with overlap match",
			raw:            "VP OF SALES",
			wantNormalized: "VP of Sales",
			wantSeniority:  model.TierExecutive,
			wantRoleID:     18,
			wantTier:       model.MatchOverlap,
		},
		{
			name:           "no role but seniority known",
			raw:            "Zookeeper Apprentice",
			wantNormalized: "Zookeeper Apprentice",
			wantSeniority:  model.TierEntry,
			wantRoleID:     0,
		},
		{
			name:           "nothing resolvable",
			raw:            "Xylophone Whisperer",
			wantNormalized: "Xylophone Whisperer",
			wantSeniority:  model.TierUnknown,
			wantRoleID:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Process(tt.raw)

			assert.Equal(t, tt.raw, got.RawTitle)
			assert.Equal(t, tt.wantNormalized, got.NormalizedTitle)
			assert.Equal(t, tt.wantSeniority, got.Seniority)

			if tt.wantRoleID == 0 {
				assert.False(t, got.Matched())
				assert.Nil(t, got.RoleID)
				assert.Zero(t, got.TitleConfidence)
				assert.Empty(t, got.MatchTier)
				return
			}
			require.True(t, got.Matched())
			assert.Equal(t, tt.wantRoleID, *got.RoleID)
			assert.Equal(t, tt.wantTier, got.MatchTier)
			assert.Greater(t, got.TitleConfidence, 0.0)
			role, ok := e.Snapshot().Role(tt.wantRoleID)
			require.True(t, ok)
			assert.Equal(t, role.Name, got.RoleName)
		})
	}
}

func TestProcessNeverFails(t *testing.T) {
	e := newTestEngine(t)

	// Garbage in, result out. The engine is a total function over strings.
	for _, raw := range []string{"", "   ", "!!!", "........", "日本語のタイトル"} {
		got := e.Process(raw)
		assert.Equal(t, raw, got.RawTitle)
		assert.Equal(t, model.TierUnknown, got.Seniority)
		assert.False(t, got.Matched())
	}
}

func TestProcessDeterministic(t *testing.T) {
	e := newTestEngine(t)

	first := e.Process("Senior Data Engineer III")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, e.Process("Senior Data Engineer III"))
	}
}

func TestProcessBatchPreservesOrder(t *testing.T) {
	e := newTestEngine(t)

	raws := []string{"Registered Nurse", "Custodian", "Data Analyst"}
	results := e.ProcessBatch(raws)
	require.Len(t, results, len(raws))
	for i, r := range results {
		assert.Equal(t, raws[i], r.RawTitle)
		assert.True(t, r.Matched(), "raw=%q", raws[i])
	}
}

func TestProcessBatchAliasHitRate(t *testing.T) {
	e := newTestEngine(t)

	// A realistic batch: most rows hit the alias cache, the rest fall
	// through to the scoring tiers or stay unmatched.
	batch := []string{
		"Software Engineer", "software developer", "REGISTERED NURSE",
		"Accountant", "custodian", "Attorney", "Project Manager",
		"School Nurse Coordinator", "Lead Zamboni Driver", "Teacher Aide Floater",
	}
	results := e.ProcessBatch(batch)

	aliasHits := 0
	for _, r := range results {
		if r.MatchTier == model.MatchAlias {
			aliasHits++
		}
	}
	assert.Equal(t, 7, aliasHits)
}

func TestSetSnapshotSwapsAtomically(t *testing.T) {
	e := newTestEngine(t)
	r := rules.Default()

	next, err := taxonomy.New([]model.CanonicalRole{
		{ID: 100, Name: "Glassblower", Aliases: []string{"glass artisan"}},
	}, r)
	require.NoError(t, err)

	assert.False(t, e.Process("Glassblower").Matched())
	e.SetSnapshot(next)
	got := e.Process("Glassblower")
	require.True(t, got.Matched())
	assert.Equal(t, int64(100), *got.RoleID)
	// The old snapshot's roles are gone from new lookups.
	assert.False(t, e.Process("Registered Nurse").Matched())
}

func TestProcessConcurrentWithSwap(t *testing.T) {
	e := newTestEngine(t)
	r := rules.Default()

	alt, err := taxonomy.New(taxonomy.DefaultRoles()[:5], r)
	require.NoError(t, err)
	base := e.Snapshot()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := e.Process("Senior Software Engineer")
				// Role 1 exists in both snapshots; the parse must succeed
				// no matter which snapshot the call lands on.
				assert.True(t, got.Matched())
			}
		}()
	}
	for i := 0; i < 50; i++ {
		e.SetSnapshot(alt)
		e.SetSnapshot(base)
	}
	wg.Wait()
}
