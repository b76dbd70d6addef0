package ladder

import (
	"fmt"

	"github.com/wagescope/ladder/internal/engine"
	"github.com/wagescope/ladder/internal/engine/matcher"
	"github.com/wagescope/ladder/internal/engine/normalizer"
	"github.com/wagescope/ladder/internal/engine/rules"
	"github.com/wagescope/ladder/internal/engine/semantic"
	"github.com/wagescope/ladder/internal/engine/seniority"
	"github.com/wagescope/ladder/internal/engine/taxonomy"
	"github.com/wagescope/ladder/internal/model"
)

// Ladder is a job-title normalization and resolution engine. It resolves
// free-text titles against a canonical role taxonomy and assigns a
// seniority tier, each with a confidence score. Safe for concurrent use.
type Ladder struct {
	engine   *engine.Engine
	rules    rules.Rules
	embedder semantic.Embedder // nil unless a semantic model is configured
	matcher  *matcher.Matcher
}

// New creates a Ladder instance: loads reference data, builds the taxonomy
// snapshot (pre-embedding it when a semantic model is configured), and wires
// the resolution pipeline. Create once and reuse — snapshot building is the
// expensive part, and it happens here, not per title.
func New(opts ...Option) (*Ladder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r, err := resolveRules(o)
	if err != nil {
		return nil, fmt.Errorf("ladder: %w", err)
	}

	roleSet, err := resolveRoles(o)
	if err != nil {
		return nil, fmt.Errorf("ladder: %w", err)
	}

	var emb semantic.Embedder
	if o.modelDir != "" {
		emb, err = semantic.New(o.modelDir)
		if err != nil {
			return nil, fmt.Errorf("ladder: %w", err)
		}
	}

	snapOpts := []taxonomy.Option{}
	if emb != nil {
		snapOpts = append(snapOpts, taxonomy.WithEmbedder(emb))
	}
	snap, err := taxonomy.New(roleSet, r, snapOpts...)
	if err != nil {
		if emb != nil {
			emb.Close()
		}
		return nil, fmt.Errorf("ladder: %w", err)
	}

	matchOpts := []matcher.Option{
		matcher.WithOverlapThreshold(o.overlapThreshold),
		matcher.WithKeywordConfidence(o.keywordConfidence),
	}
	if emb != nil {
		matchOpts = append(matchOpts, matcher.WithEmbedder(emb, o.semanticThreshold))
	}
	m := matcher.New(matchOpts...)

	eng := engine.New(
		normalizer.New(r.Acronyms, r.MinorWords),
		seniority.New(r.SeniorityTiers()),
		m,
		snap,
	)

	return &Ladder{engine: eng, rules: r, embedder: emb, matcher: m}, nil
}

// ParseTitle resolves a single raw title. It never fails: malformed input
// degrades to an unmatched result with Unknown seniority.
func (l *Ladder) ParseTitle(raw string) Result {
	return resultFromInternal(l.engine.Process(raw))
}

// ParseTitles resolves a batch of raw titles, preserving order.
func (l *Ladder) ParseTitles(raws []string) []Result {
	internal := l.engine.ProcessBatch(raws)
	results := make([]Result, len(internal))
	for i, r := range internal {
		results[i] = resultFromInternal(r)
	}
	return results
}

// ReloadTaxonomy builds a fresh snapshot from the given roles and swaps it
// in atomically. Parses in flight finish against the old snapshot; new
// calls see the new one. The instance keeps serving throughout.
func (l *Ladder) ReloadTaxonomy(roleSet []Role) error {
	internal := make([]model.CanonicalRole, len(roleSet))
	for i, r := range roleSet {
		internal[i] = roleToInternal(r)
	}

	snapOpts := []taxonomy.Option{}
	if l.embedder != nil {
		snapOpts = append(snapOpts, taxonomy.WithEmbedder(l.embedder))
	}
	snap, err := taxonomy.New(internal, l.rules, snapOpts...)
	if err != nil {
		return fmt.Errorf("ladder: %w", err)
	}
	l.engine.SetSnapshot(snap)
	return nil
}

// Roles returns the canonical roles in the current taxonomy snapshot.
// Read-only: consumers can inspect the taxonomy but not modify it.
func (l *Ladder) Roles() []Role {
	internal := l.engine.Snapshot().Roles()
	roles := make([]Role, len(internal))
	for i, r := range internal {
		roles[i] = roleFromInternal(r)
	}
	return roles
}

// Close releases the semantic model resources, if any were loaded.
func (l *Ladder) Close() error {
	if l.embedder != nil {
		return l.embedder.Close()
	}
	return nil
}

func resolveRules(o options) (rules.Rules, error) {
	if o.rulesPath != "" {
		return rules.LoadFile(o.rulesPath)
	}
	return rules.Default(), nil
}

func resolveRoles(o options) ([]model.CanonicalRole, error) {
	if len(o.roles) > 0 {
		internal := make([]model.CanonicalRole, len(o.roles))
		for i, r := range o.roles {
			internal[i] = roleToInternal(r)
		}
		return internal, nil
	}
	if o.taxonomyPath != "" {
		return taxonomy.LoadFile(o.taxonomyPath)
	}
	return taxonomy.DefaultRoles(), nil
}
