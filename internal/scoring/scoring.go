// Package scoring holds the pure aggregation math: floor-averaging concept
// levels into dimension levels, normalizing to the 0-1 scale, and the two
// independent readiness flags.
package scoring

import (
	"math"

	"github.com/teundejong/mlready/internal/domain"
)

// levelEpsilon guards floating-point boundary errors when converting a
// normalized score back to a level; an overall score of exactly 0.75 must
// map to level 4, not 3.
const levelEpsilon = 1e-9

// FloorAvg returns the floor of the arithmetic mean of levels. Truncation,
// not rounding: [1,1,1,1,2] averages to 1.
func FloorAvg(levels []domain.Level) domain.Level {
	if len(levels) == 0 {
		return 0
	}
	sum := 0
	for _, l := range levels {
		sum += int(l)
	}
	return domain.Level(sum / len(levels))
}

// Normalize maps a 1-5 level onto the 0-1 scale.
func Normalize(l domain.Level) float64 {
	return float64(l-1) / 4.0
}

// OverallLevelFromNMRS converts a normalized mean readiness score back into
// a 1-5 level, clamped to the valid range.
func OverallLevelFromNMRS(nmrs float64) domain.Level {
	l := domain.Level(1 + int(math.Floor(4*nmrs+levelEpsilon)))
	if l < domain.LevelMin {
		return domain.LevelMin
	}
	if l > domain.LevelMax {
		return domain.LevelMax
	}
	return l
}
