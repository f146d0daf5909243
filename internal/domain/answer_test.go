package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer_FinalLevel_OverrideWins(t *testing.T) {
	a := &Answer{
		Key:       ConceptKey{Dimension: "1. Data", Concept: "Quality"},
		Checklist: Checklist{A: true, B: true},
	}

	level, ok := a.FinalLevel()
	require.True(t, ok)
	assert.Equal(t, Level(3), level)

	a.EnableOverride(5)
	level, ok = a.FinalLevel()
	require.True(t, ok)
	assert.Equal(t, Level(5), level)
}

func TestAnswer_DisableOverride_RevertsToChecklist(t *testing.T) {
	a := &Answer{Checklist: Checklist{A: true}}
	a.EnableOverride(4)

	a.DisableOverride()
	level, ok := a.FinalLevel()
	require.True(t, ok)
	assert.Equal(t, Level(2), level)

	// The last override choice is retained for re-enabling.
	assert.Equal(t, Level(4), a.OverrideLevel)
	a.OverrideEnabled = true
	level, _ = a.FinalLevel()
	assert.Equal(t, Level(4), level)
}

func TestAnswer_FinalLevel_OverrideWithoutChecklist(t *testing.T) {
	a := &Answer{}
	_, ok := a.FinalLevel()
	assert.False(t, ok)

	a.EnableOverride(3)
	level, ok := a.FinalLevel()
	require.True(t, ok)
	assert.Equal(t, Level(3), level)
}

func TestResponseSet_Levels_SkipsUnresolved(t *testing.T) {
	rs := make(ResponseSet)
	rs.Set(&Answer{Key: ConceptKey{Dimension: "d", Concept: "answered"}, Checklist: Checklist{A: true}})
	rs.Set(&Answer{Key: ConceptKey{Dimension: "d", Concept: "contradictory"}, Checklist: Checklist{A: true, None: true}})
	rs.Set(&Answer{Key: ConceptKey{Dimension: "d", Concept: "empty"}})

	levels := rs.Levels()
	assert.Len(t, levels, 1)
	assert.Equal(t, Level(2), levels[ConceptKey{Dimension: "d", Concept: "answered"}])
}

func TestLevel_BadgeAndLabel(t *testing.T) {
	assert.Equal(t, "Very low", Level(1).Badge())
	assert.Equal(t, "Medium", Level(3).Badge())
	assert.Equal(t, "Very high", Level(5).Badge())
	assert.Equal(t, "Level 4 – High", Level(4).Label())
}
