// Package taxonomy builds the immutable snapshot the role matcher resolves
// against: the canonical role set, the alias-key cache backing the exact-match
// fast path, per-role token sets for overlap scoring, compiled keyword rules,
// and (when an embedder is configured) pre-embedded role vectors.
//
// A snapshot is built once per batch job and read-only thereafter. Refreshing
// the taxonomy means building a new snapshot and swapping the reference —
// never mutating one that matches may be reading.
package taxonomy

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/wagescope/ladder/internal/engine/rules"
	"github.com/wagescope/ladder/internal/model"
)

// Embedder produces vector embeddings from text. Implemented by the
// semantic package; declared here so snapshot building does not depend on
// the ONNX runtime when the semantic tier is disabled.
type Embedder interface {
	Embed(text string) ([]float32, error)
	EmbedBatch(texts []string) ([][]float32, error)
}

// RoleTokens holds the pre-tokenized candidate strings for one role:
// its display name plus every registered alias.
type RoleTokens struct {
	ID      int64
	NameLen int        // length of the display name, for tie-breaking
	Sets    [][]string // token set per candidate string, stopwords removed
}

// KeywordRule is a compiled keyword fallback rule with the role resolved
// to its id.
type KeywordRule struct {
	RoleID int64
	AllOf  []string
	AnyOf  []string
}

// RoleVector pairs a role id with its pre-computed embedding.
type RoleVector struct {
	ID     int64
	Vector []float32
}

// Snapshot is the read-only taxonomy view shared across matcher calls.
type Snapshot struct {
	roles    []model.CanonicalRole // sorted by id
	byID     map[int64]int         // id -> index into roles
	aliases  map[string]int64      // folded alias key -> role id
	tokens   []RoleTokens          // sorted by id, parallel to roles
	keywords []KeywordRule
	vectors  []RoleVector // empty unless an embedder was supplied
	stop     map[string]struct{}
}

// Option configures snapshot building.
type Option func(*builder)

type builder struct {
	embedder Embedder
	logger   *slog.Logger
}

// WithEmbedder pre-embeds every role's descriptive text at build time so the
// matcher's semantic tier has vectors to compare against. Building with an
// embedder is expensive (one inference pass over the whole taxonomy) — it
// happens once, outside the per-title hot path.
func WithEmbedder(emb Embedder) Option {
	return func(b *builder) { b.embedder = emb }
}

// WithLogger sets the logger used for build diagnostics (alias collisions,
// skipped keyword rules). Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *builder) { b.logger = l }
}

// New builds a Snapshot from the canonical role set and rule tables.
// An empty role set is rejected — matching against nothing silently would
// mark every title unmatched and poison downstream aggregation.
func New(roleSet []model.CanonicalRole, r rules.Rules, opts ...Option) (*Snapshot, error) {
	if len(roleSet) == 0 {
		return nil, fmt.Errorf("taxonomy: empty role set")
	}

	b := builder{logger: slog.Default()}
	for _, opt := range opts {
		opt(&b)
	}

	roles := make([]model.CanonicalRole, len(roleSet))
	copy(roles, roleSet)
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })

	s := &Snapshot{
		roles:   roles,
		byID:    make(map[int64]int, len(roles)),
		aliases: make(map[string]int64, len(roles)*2),
	}

	stop := stopwordSet(r.Stopwords)
	s.stop = stop
	seenNames := make(map[string]int64, len(roles))

	for i, role := range roles {
		if role.Name == "" {
			return nil, fmt.Errorf("taxonomy: role %d has no name", role.ID)
		}
		if _, dup := s.byID[role.ID]; dup {
			return nil, fmt.Errorf("taxonomy: duplicate role id %d", role.ID)
		}
		if prev, dup := seenNames[Key(role.Name)]; dup {
			return nil, fmt.Errorf("taxonomy: roles %d and %d share the name %q", prev, role.ID, role.Name)
		}
		s.byID[role.ID] = i
		seenNames[Key(role.Name)] = role.ID

		rt := RoleTokens{ID: role.ID, NameLen: len(role.Name)}
		for _, candidate := range append([]string{role.Name}, role.Aliases...) {
			key := Key(candidate)
			if key == "" {
				continue
			}
			if prev, taken := s.aliases[key]; taken {
				if prev != role.ID {
					// First registration wins; roles are sorted by id so
					// the outcome is deterministic across builds.
					b.logger.Warn("taxonomy: alias collision",
						slog.String("alias", candidate),
						slog.Int64("kept", prev),
						slog.Int64("dropped", role.ID))
				}
			} else {
				s.aliases[key] = role.ID
			}
			if toks := Tokens(candidate, stop); len(toks) > 0 {
				rt.Sets = append(rt.Sets, toks)
			}
		}
		s.tokens = append(s.tokens, rt)
	}

	s.keywords = compileKeywords(r.Keywords, seenNames, b.logger)

	if b.embedder != nil {
		vectors, err := embedRoles(roles, b.embedder)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: %w", err)
		}
		s.vectors = vectors
	}

	return s, nil
}

// compileKeywords resolves keyword rules to role ids, preserving order.
// Rules naming a role absent from this taxonomy are skipped with a warning
// rather than failing the build — the rule tables and the role set version
// independently.
func compileKeywords(kws []rules.KeywordRule, names map[string]int64, logger *slog.Logger) []KeywordRule {
	out := make([]KeywordRule, 0, len(kws))
	for _, kw := range kws {
		id, ok := names[Key(kw.Role)]
		if !ok {
			logger.Warn("taxonomy: keyword rule skipped, role not in taxonomy",
				slog.String("role", kw.Role))
			continue
		}
		out = append(out, KeywordRule{RoleID: id, AllOf: kw.AllOf, AnyOf: kw.AnyOf})
	}
	return out
}

// embedRoles embeds each role's descriptive text in one batched call.
func embedRoles(roles []model.CanonicalRole, emb Embedder) ([]RoleVector, error) {
	texts := make([]string, len(roles))
	for i, role := range roles {
		texts[i] = describeRole(role)
	}
	vecs, err := emb.EmbedBatch(texts)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(roles) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d roles", len(vecs), len(roles))
	}
	out := make([]RoleVector, len(roles))
	for i, role := range roles {
		out[i] = RoleVector{ID: role.ID, Vector: vecs[i]}
	}
	return out, nil
}

// describeRole builds the text embedded for a role: its name enriched with
// the family and typical skills, which disambiguates short generic names.
func describeRole(role model.CanonicalRole) string {
	parts := []string{role.Name}
	if role.RoleFamily != "" {
		parts = append(parts, role.RoleFamily)
	}
	if role.Category != "" {
		parts = append(parts, role.Category)
	}
	if len(role.TypicalSkills) > 0 {
		parts = append(parts, strings.Join(role.TypicalSkills, " "))
	}
	return strings.Join(parts, ". ")
}

// Lookup returns the role id for an exact alias-key hit.
func (s *Snapshot) Lookup(key string) (int64, bool) {
	id, ok := s.aliases[key]
	return id, ok
}

// Role returns the canonical role for an id.
func (s *Snapshot) Role(id int64) (model.CanonicalRole, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return model.CanonicalRole{}, false
	}
	return s.roles[idx], true
}

// Roles returns the sorted canonical role set. Callers must not modify it.
func (s *Snapshot) Roles() []model.CanonicalRole { return s.roles }

// Tokens returns the per-role candidate token sets for overlap scoring.
func (s *Snapshot) TokenSets() []RoleTokens { return s.tokens }

// Keywords returns the compiled keyword fallback rules, in rule order.
func (s *Snapshot) Keywords() []KeywordRule { return s.keywords }

// Vectors returns the pre-embedded role vectors; empty when the semantic
// tier is disabled.
func (s *Snapshot) Vectors() []RoleVector { return s.vectors }

// QueryTokens tokenizes a residual title with the same folding and stopword
// filtering used when the snapshot's role token sets were built.
func (s *Snapshot) QueryTokens(residual string) []string {
	return Tokens(residual, s.stop)
}

// Len returns the number of roles in the snapshot.
func (s *Snapshot) Len() int { return len(s.roles) }

func stopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
