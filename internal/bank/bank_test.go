package bank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teundejong/mlready/internal/domain"
)

func TestLoad_EmbeddedBank(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	assert.Len(t, b.Dimensions, DimensionCount)
	assert.Equal(t, DimensionCount*ConceptsPerDimension, b.TotalQuestions())
	require.NotNil(t, b.Dimension(b.AnchorDimension))

	// The anchor dimension carries the raised minimum; everything else sits
	// at the default.
	assert.Equal(t, domain.Level(4), b.Dimension(b.AnchorDimension).MinimumLevel)
	for _, d := range b.Dimensions {
		if d.Name == b.AnchorDimension {
			continue
		}
		assert.Equal(t, domain.Level(3), d.MinimumLevel, d.Name)
	}
}

func TestLoad_EveryConceptIsComplete(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	for _, d := range b.Dimensions {
		assert.Len(t, d.Concepts, ConceptsPerDimension, d.Name)
		for _, c := range d.Concepts {
			assert.NotEmpty(t, c.Question, "%s / %s", d.Name, c.Name)
			assert.Len(t, c.Levels, 5, "%s / %s", d.Name, c.Name)
			assert.NotEmpty(t, c.Checks.A, "%s / %s", d.Name, c.Name)
			assert.NotEmpty(t, c.Checks.Realtime, "%s / %s", d.Name, c.Name)
		}
	}
}

func TestLoadReader_RejectsInvalidBank(t *testing.T) {
	_, err := LoadReader(strings.NewReader(`{"anchor_dimension":"x","dimensions":[]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 8 dimensions")

	_, err = LoadReader(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestBank_Lookups(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	d := b.Dimensions[0]
	c := d.Concepts[0]

	assert.NotNil(t, b.Concept(d.Name, c.Name))
	assert.Nil(t, b.Concept(d.Name, "no such concept"))
	assert.Nil(t, b.Concept("no such dimension", c.Name))
	assert.True(t, b.Contains(domain.ConceptKey{Dimension: d.Name, Concept: c.Name}))
	assert.False(t, b.Contains(domain.ConceptKey{Dimension: d.Name, Concept: "nope"}))

	assert.Equal(t, c.Levels[2], c.LevelDescription(3))
	assert.Empty(t, c.LevelDescription(0))
}

func TestBank_Keys_PreserveOrder(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	keys := b.Keys()
	require.Len(t, keys, b.TotalQuestions())
	assert.Equal(t, b.Dimensions[0].Name, keys[0].Dimension)
	assert.Equal(t, b.Dimensions[0].Concepts[0].Name, keys[0].Concept)
	last := keys[len(keys)-1]
	assert.Equal(t, b.Dimensions[DimensionCount-1].Name, last.Dimension)
}

func TestBank_Missing(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	rs := make(domain.ResponseSet)
	assert.Len(t, b.Missing(rs), b.TotalQuestions())

	keys := b.Keys()
	rs.Set(&domain.Answer{Key: keys[0], Checklist: domain.Checklist{A: true}})
	rs.Set(&domain.Answer{Key: keys[1]}) // empty checklist, still missing

	missing := b.Missing(rs)
	assert.Len(t, missing, b.TotalQuestions()-1)
	assert.Equal(t, keys[1], missing[0])
}

func TestBank_ApplyMinimumOverrides(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	name := b.Dimensions[2].Name
	require.NoError(t, b.ApplyMinimumOverrides(map[string]domain.Level{name: 5}))
	assert.Equal(t, domain.Level(5), b.Dimension(name).MinimumLevel)

	assert.Error(t, b.ApplyMinimumOverrides(map[string]domain.Level{"unknown": 3}))
	assert.Error(t, b.ApplyMinimumOverrides(map[string]domain.Level{name: 9}))
}
