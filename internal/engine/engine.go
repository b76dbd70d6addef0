// Package engine orchestrates the resolution pipeline for a single title:
// normalize → extract seniority → match role → assemble the result. Each
// call is stateless over the shared immutable taxonomy snapshot, so one
// Engine serves any number of goroutines with no locking.
package engine

import (
	"sync/atomic"

	"github.com/wagescope/ladder/internal/engine/matcher"
	"github.com/wagescope/ladder/internal/engine/normalizer"
	"github.com/wagescope/ladder/internal/engine/seniority"
	"github.com/wagescope/ladder/internal/engine/taxonomy"
	"github.com/wagescope/ladder/internal/model"
)

// Engine wires the normalizer, seniority extractor, and matcher over a
// swappable taxonomy snapshot.
type Engine struct {
	normalizer *normalizer.Normalizer
	seniority  *seniority.Extractor
	matcher    *matcher.Matcher
	snapshot   atomic.Pointer[taxonomy.Snapshot]
}

// New creates an Engine from its components and the initial snapshot.
func New(n *normalizer.Normalizer, s *seniority.Extractor, m *matcher.Matcher, snap *taxonomy.Snapshot) *Engine {
	e := &Engine{normalizer: n, seniority: s, matcher: m}
	e.snapshot.Store(snap)
	return e
}

// SetSnapshot atomically swaps in a freshly built taxonomy snapshot.
// Calls already in flight finish against the snapshot they started with.
func (e *Engine) SetSnapshot(snap *taxonomy.Snapshot) {
	e.snapshot.Store(snap)
}

// Snapshot returns the snapshot currently being matched against.
func (e *Engine) Snapshot() *taxonomy.Snapshot {
	return e.snapshot.Load()
}

// Process resolves one raw title. It is a total function: malformed input
// degrades to an unmatched result with Unknown seniority, never an error.
func (e *Engine) Process(raw string) model.ParseResult {
	normalized := e.normalizer.Normalize(raw)
	tier, seniorityConf, residual := e.seniority.Extract(normalized)

	result := model.ParseResult{
		RawTitle:            raw,
		NormalizedTitle:     normalized,
		Seniority:           tier,
		SeniorityConfidence: seniorityConf,
	}

	snap := e.snapshot.Load()
	m := e.matcher.Match(normalized, residual, snap)
	if m.OK {
		id := m.RoleID
		result.RoleID = &id
		result.TitleConfidence = m.Confidence
		result.MatchTier = m.Tier
		if role, ok := snap.Role(m.RoleID); ok {
			result.RoleName = role.Name
		}
	}
	return result
}

// ProcessBatch resolves a slice of raw titles in order.
func (e *Engine) ProcessBatch(raws []string) []model.ParseResult {
	results := make([]model.ParseResult, len(raws))
	for i, raw := range raws {
		results[i] = e.Process(raw)
	}
	return results
}
