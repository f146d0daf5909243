package scoring

import (
	"fmt"
	"strings"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
)

// mlReadyFloor is the flat per-dimension minimum of the ML-ready rule; the
// anchor dimension additionally needs mlReadyAnchorLevel.
const (
	mlReadyFloor       = domain.Level(3)
	mlReadyAnchorLevel = domain.Level(4)
)

// IncompleteError reports which (dimension, concept) pairs are still missing
// a resolved level. Evaluation is refused entirely while any pair is missing.
type IncompleteError struct {
	Missing []domain.ConceptKey
}

func (e *IncompleteError) Error() string {
	pairs := make([]string, len(e.Missing))
	for i, k := range e.Missing {
		pairs[i] = k.String()
	}
	return fmt.Sprintf("assessment incomplete: %d unanswered: %s", len(e.Missing), strings.Join(pairs, ", "))
}

// Evaluation is the computed result for a complete response set.
type Evaluation struct {
	// NMRS is the normalized mean readiness score on the 0-1 scale.
	NMRS         float64
	OverallLevel domain.Level

	// MLReady is the flat rule: anchor dimension at level 4 or above and
	// every dimension at level 3 or above. MeetsMinimums compares each
	// dimension against its own configured threshold. The two flags are
	// independent outputs and may disagree.
	MLReady       bool
	MeetsMinimums bool

	// DimensionOrder preserves bank order for rendering.
	DimensionOrder  []string
	DimensionLevels map[string]domain.Level
	Normalized      map[string]float64
	ConceptLevels   map[domain.ConceptKey]domain.Level
}

// Evaluate aggregates a response set against the bank. It fails with an
// IncompleteError when any (dimension, concept) pair lacks a final level;
// partial results are never produced.
func Evaluate(b *bank.Bank, rs domain.ResponseSet) (*Evaluation, error) {
	if missing := b.Missing(rs); len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing}
	}

	levels := rs.Levels()
	ev := &Evaluation{
		DimensionLevels: make(map[string]domain.Level, len(b.Dimensions)),
		Normalized:      make(map[string]float64, len(b.Dimensions)),
		ConceptLevels:   levels,
	}

	var nmrsSum float64
	for _, d := range b.Dimensions {
		conceptLevels := make([]domain.Level, 0, len(d.Concepts))
		for _, c := range d.Concepts {
			conceptLevels = append(conceptLevels, levels[domain.ConceptKey{Dimension: d.Name, Concept: c.Name}])
		}

		ri := FloorAvg(conceptLevels)
		ev.DimensionOrder = append(ev.DimensionOrder, d.Name)
		ev.DimensionLevels[d.Name] = ri
		ev.Normalized[d.Name] = Normalize(ri)
		nmrsSum += ev.Normalized[d.Name]
	}

	ev.NMRS = nmrsSum / float64(len(b.Dimensions))
	ev.OverallLevel = OverallLevelFromNMRS(ev.NMRS)

	ev.MLReady = ev.DimensionLevels[b.AnchorDimension] >= mlReadyAnchorLevel
	ev.MeetsMinimums = true
	for _, d := range b.Dimensions {
		if ev.DimensionLevels[d.Name] < mlReadyFloor {
			ev.MLReady = false
		}
		if ev.DimensionLevels[d.Name] < d.MinimumLevel {
			ev.MeetsMinimums = false
		}
	}

	return ev, nil
}
