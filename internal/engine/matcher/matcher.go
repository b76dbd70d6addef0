// Package matcher resolves a residual title against the taxonomy snapshot
// using a layered strategy: exact alias lookup, symmetric token-overlap
// scoring, hand-authored keyword rules, and — when an embedder is configured
// — embedding similarity as a last resort. Tiers are evaluated in order and
// the first success wins; exhausting all tiers without a hit is a normal,
// expected outcome, not an error.
package matcher

import (
	"math"
	"strings"

	"github.com/wagescope/ladder/internal/engine/taxonomy"
	"github.com/wagescope/ladder/internal/model"
)

// Default thresholds and the keyword-tier confidence constant. The keyword
// confidence is fixed and conservative: those rules are heuristics, not
// measured certainty.
const (
	DefaultOverlapThreshold  = 0.6
	DefaultKeywordConfidence = 0.5
	DefaultSemanticThreshold = 0.7
)

// Result is the outcome of one match attempt. OK false means no role
// resolved — distinguishable from a low-confidence hit, where OK is true
// and Confidence is small.
type Result struct {
	RoleID     int64
	OK         bool
	Confidence float64
	Tier       string // model.MatchAlias, MatchOverlap, MatchKeyword, MatchSemantic
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithOverlapThreshold sets the minimum token-overlap score accepted by
// tier 2. Default 0.6.
func WithOverlapThreshold(t float64) Option {
	return func(m *Matcher) { m.overlapThreshold = t }
}

// WithKeywordConfidence sets the fixed confidence reported for keyword-rule
// hits. Default 0.5.
func WithKeywordConfidence(c float64) Option {
	return func(m *Matcher) { m.keywordConfidence = c }
}

// WithEmbedder enables the semantic fallback tier. The snapshot must have
// been built with the same embedder so role vectors exist to compare against.
func WithEmbedder(emb taxonomy.Embedder, threshold float64) Option {
	return func(m *Matcher) {
		m.embedder = emb
		if threshold > 0 {
			m.semanticThreshold = threshold
		}
	}
}

// Matcher is stateless apart from its configuration; one instance serves
// concurrent calls against any snapshot.
type Matcher struct {
	overlapThreshold  float64
	keywordConfidence float64
	semanticThreshold float64
	embedder          taxonomy.Embedder
}

// New creates a Matcher with the given options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		overlapThreshold:  DefaultOverlapThreshold,
		keywordConfidence: DefaultKeywordConfidence,
		semanticThreshold: DefaultSemanticThreshold,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match resolves a title against the snapshot. normalized is the full
// normalized title, residual the seniority-stripped form. Tier 1 consults
// the alias cache with both — aliases harvested from historical matches
// often embed seniority words themselves.
func (m *Matcher) Match(normalized, residual string, snap *taxonomy.Snapshot) Result {
	if snap == nil || snap.Len() == 0 {
		return Result{}
	}

	// Tier 1: exact alias lookup.
	for _, key := range [2]string{taxonomy.Key(residual), taxonomy.Key(normalized)} {
		if key == "" {
			continue
		}
		if id, ok := snap.Lookup(key); ok {
			return Result{RoleID: id, OK: true, Confidence: 1.0, Tier: model.MatchAlias}
		}
	}

	titleTokens := snap.QueryTokens(residual)

	// Tier 2: symmetric token overlap.
	if r, ok := m.matchOverlap(titleTokens, snap); ok {
		return r
	}

	// Tier 3: keyword rules.
	if r, ok := m.matchKeyword(taxonomy.Key(residual), snap); ok {
		return r
	}

	// Tier 4: embedding similarity, only when configured.
	if m.embedder != nil {
		if r, ok := m.matchSemantic(residual, snap); ok {
			return r
		}
	}

	return Result{}
}

// matchOverlap scores every role by the Dice coefficient between the title
// tokens and the role's name/alias tokens, keeping the best score per role.
// Ties break toward the role with the shorter display name (more specific),
// then the lower id, so results are deterministic.
func (m *Matcher) matchOverlap(titleTokens []string, snap *taxonomy.Snapshot) (Result, bool) {
	if len(titleTokens) == 0 {
		return Result{}, false
	}

	titleSet := make(map[string]struct{}, len(titleTokens))
	for _, t := range titleTokens {
		titleSet[t] = struct{}{}
	}

	var (
		bestID    int64
		bestScore float64
		bestLen   int
		found     bool
	)
	for _, rt := range snap.TokenSets() {
		score := 0.0
		for _, set := range rt.Sets {
			if s := diceScore(titleSet, len(titleTokens), set); s > score {
				score = s
			}
		}
		if score < m.overlapThreshold {
			continue
		}
		better := score > bestScore ||
			(score == bestScore && (rt.NameLen < bestLen ||
				(rt.NameLen == bestLen && rt.ID < bestID)))
		if !found || better {
			bestID, bestScore, bestLen = rt.ID, score, rt.NameLen
			found = true
		}
	}
	if !found {
		return Result{}, false
	}
	return Result{RoleID: bestID, OK: true, Confidence: bestScore, Tier: model.MatchOverlap}, true
}

// diceScore computes the symmetric overlap 2|A∩B| / (|A|+|B|), which
// degrades naturally with partial matches in either direction.
func diceScore(titleSet map[string]struct{}, titleLen int, roleTokens []string) float64 {
	if titleLen == 0 || len(roleTokens) == 0 {
		return 0
	}
	shared := 0
	for _, t := range roleTokens {
		if _, ok := titleSet[t]; ok {
			shared++
		}
	}
	if shared == 0 {
		return 0
	}
	return 2 * float64(shared) / float64(titleLen+len(roleTokens))
}

// matchKeyword walks the ordered rule list; the first rule whose terms all
// appear in the folded title wins.
func (m *Matcher) matchKeyword(key string, snap *taxonomy.Snapshot) (Result, bool) {
	if key == "" {
		return Result{}, false
	}
	padded := " " + key + " "
	for _, rule := range snap.Keywords() {
		if keywordHit(padded, rule) {
			return Result{
				RoleID:     rule.RoleID,
				OK:         true,
				Confidence: m.keywordConfidence,
				Tier:       model.MatchKeyword,
			}, true
		}
	}
	return Result{}, false
}

// keywordHit requires every AllOf term and, when AnyOf is non-empty, at
// least one AnyOf term. Terms match on word boundaries within the folded
// key, so "rn" does not fire inside "governance".
func keywordHit(padded string, rule taxonomy.KeywordRule) bool {
	for _, term := range rule.AllOf {
		if !containsTerm(padded, term) {
			return false
		}
	}
	if len(rule.AnyOf) == 0 {
		return true
	}
	for _, term := range rule.AnyOf {
		if containsTerm(padded, term) {
			return true
		}
	}
	return false
}

func containsTerm(padded, term string) bool {
	if term == "" {
		return false
	}
	return strings.Contains(padded, " "+term+" ")
}

// matchSemantic embeds the residual title and compares it against the
// pre-embedded role vectors. Embedding failures degrade to "no hit": the
// semantic tier must never make a parse fail.
func (m *Matcher) matchSemantic(residual string, snap *taxonomy.Snapshot) (Result, bool) {
	vectors := snap.Vectors()
	if len(vectors) == 0 || residual == "" {
		return Result{}, false
	}
	vec, err := m.embedder.Embed(residual)
	if err != nil {
		return Result{}, false
	}

	bestID := int64(0)
	bestSim := -1.0
	for _, rv := range vectors {
		if sim := cosineSimilarity(vec, rv.Vector); sim > bestSim {
			bestID, bestSim = rv.ID, sim
		}
	}
	if bestSim < m.semanticThreshold {
		return Result{}, false
	}
	return Result{RoleID: bestID, OK: true, Confidence: bestSim, Tier: model.MatchSemantic}, true
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
