package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagescope/ladder/internal/model"
)

func matched(tier string, conf float64) model.ParseResult {
	id := int64(1)
	return model.ParseResult{
		RoleID:          &id,
		MatchTier:       tier,
		TitleConfidence: conf,
		Seniority:       model.TierSenior,
	}
}

func counterTotal(t *testing.T, r *Recorder, name string) float64 {
	t.Helper()
	families, err := r.Gather().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func TestObserve(t *testing.T) {
	r := NewRecorder()

	r.Observe(matched(model.MatchAlias, 1.0))
	r.Observe(matched(model.MatchOverlap, 0.7))
	r.Observe(model.ParseResult{Seniority: model.TierUnknown})

	assert.Equal(t, 3.0, counterTotal(t, r, "ladder_titles_parsed_total"))
	assert.Equal(t, 2.0, counterTotal(t, r, "ladder_matches_total"))
	assert.Equal(t, 1.0, counterTotal(t, r, "ladder_no_match_total"))
	assert.Equal(t, 3.0, counterTotal(t, r, "ladder_seniority_total"))
}

func TestIsolatedRegistries(t *testing.T) {
	// Each recorder owns its registry; observing on one must not leak
	// into another.
	a, b := NewRecorder(), NewRecorder()
	a.Observe(matched(model.MatchAlias, 1.0))

	assert.Equal(t, 1.0, counterTotal(t, a, "ladder_titles_parsed_total"))
	assert.Equal(t, 0.0, counterTotal(t, b, "ladder_titles_parsed_total"))
}

func TestHandlerServesMetrics(t *testing.T) {
	r := NewRecorder()
	r.Observe(matched(model.MatchKeyword, 0.5))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, "ladder_titles_parsed_total 1")
	assert.Contains(t, body, `ladder_matches_total{tier="keyword"} 1`)
}
