package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierOrdering(t *testing.T) {
	// Tier values compare as seniority rank; the extractor relies on this
	// when several cues appear in one title.
	assert.True(t, TierEntry < TierMid)
	assert.True(t, TierMid < TierSenior)
	assert.True(t, TierSenior < TierStaff)
	assert.True(t, TierStaff < TierPrincipal)
	assert.True(t, TierPrincipal < TierExecutive)
	assert.True(t, TierUnknown < TierEntry)
}

func TestTierStringRoundTrip(t *testing.T) {
	for _, tier := range []SeniorityTier{
		TierUnknown, TierEntry, TierMid, TierSenior,
		TierStaff, TierPrincipal, TierExecutive,
	} {
		assert.Equal(t, tier, ParseTier(tier.String()))
	}

	assert.Equal(t, "unknown", SeniorityTier(99).String())
	assert.Equal(t, TierUnknown, ParseTier("grandmaster"))
}

func TestParseResultJSONRoundTrip(t *testing.T) {
	id := int64(7)
	in := ParseResult{
		RawTitle:            "SENIOR RN",
		NormalizedTitle:     "Senior RN",
		Seniority:           TierSenior,
		SeniorityConfidence: 0.9,
		RoleID:              &id,
		RoleName:            "Registered Nurse",
		TitleConfidence:     1.0,
		MatchTier:           MatchAlias,
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seniority":"senior"`)

	var out ParseResult
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestTierUnmarshalUnknownLabel(t *testing.T) {
	var tier SeniorityTier
	require.NoError(t, tier.UnmarshalText([]byte("grandmaster")))
	assert.Equal(t, TierUnknown, tier)
}

func TestParseResultMatched(t *testing.T) {
	assert.False(t, ParseResult{}.Matched())

	id := int64(7)
	r := ParseResult{RoleID: &id, TitleConfidence: 0.1}
	// Low confidence is still a match; nil RoleID is the only "no match".
	assert.True(t, r.Matched())
}
