package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/testutil"
)

func TestEvaluate_CompleteSet(t *testing.T) {
	b := testutil.NewTestBank()
	rs := testutil.FullResponseSet(b, 4)

	ev, err := Evaluate(b, rs)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, ev.NMRS, 1e-9)
	assert.Equal(t, domain.Level(4), ev.OverallLevel)
	assert.Equal(t, []string{"1. Data", "2. Process"}, ev.DimensionOrder)
	assert.Equal(t, domain.Level(4), ev.DimensionLevels["1. Data"])
	assert.True(t, ev.MLReady)
	assert.True(t, ev.MeetsMinimums)
	assert.Len(t, ev.ConceptLevels, b.TotalQuestions())
}

func TestEvaluate_RefusesIncompleteSet(t *testing.T) {
	b := testutil.NewTestBank()
	rs := testutil.FullResponseSet(b, 3)

	// Remove one answer and blank another via contradiction.
	keys := b.Keys()
	delete(rs, keys[0])
	rs.Get(keys[1]).Checklist = domain.Checklist{A: true, None: true}

	_, err := Evaluate(b, rs)
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Len(t, incomplete.Missing, 2)
	assert.Equal(t, keys[0], incomplete.Missing[0])
	assert.Contains(t, incomplete.Error(), "2 unanswered")
}

func TestEvaluate_MLReadyNeedsAnchorAtFour(t *testing.T) {
	b := testutil.NewTestBank()
	rs := testutil.FullResponseSet(b, 3)

	ev, err := Evaluate(b, rs)
	require.NoError(t, err)

	// All dimensions at 3 clears the floor but not the anchor requirement,
	// and the anchor dimension's own minimum of 4 is missed too.
	assert.False(t, ev.MLReady)
	assert.False(t, ev.MeetsMinimums)
}

func TestEvaluate_FlagsAreIndependent(t *testing.T) {
	b := testutil.NewTestBank()
	b.Dimensions[1].MinimumLevel = 4

	rs := testutil.FullResponseSet(b, 3)
	for _, c := range b.Dimensions[0].Concepts {
		key := domain.ConceptKey{Dimension: b.Dimensions[0].Name, Concept: c.Name}
		rs.Set(testutil.NewTestAnswer(key, 4))
	}

	ev, err := Evaluate(b, rs)
	require.NoError(t, err)

	// Anchor at 4, everything at 3+: flat rule passes. The second dimension
	// misses its raised minimum, so the threshold rule fails.
	assert.True(t, ev.MLReady)
	assert.False(t, ev.MeetsMinimums)
}

func TestEvaluate_OverridesFeedTheScore(t *testing.T) {
	b := testutil.NewTestBank()
	rs := testutil.FullResponseSet(b, 2)

	for _, key := range b.Keys() {
		rs.Get(key).EnableOverride(5)
	}

	ev, err := Evaluate(b, rs)
	require.NoError(t, err)
	assert.Equal(t, domain.Level(5), ev.OverallLevel)
	assert.InDelta(t, 1.0, ev.NMRS, 1e-9)
}
