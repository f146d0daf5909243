package domain

import "fmt"

// Level is a 1-5 readiness rating for a concept, a dimension, or the overall
// assessment. The zero value means "not set".
type Level int

const (
	LevelMin Level = 1
	LevelMax Level = 5
)

// Valid reports whether l is in the 1-5 range.
func (l Level) Valid() bool {
	return l >= LevelMin && l <= LevelMax
}

// Badge returns the readiness badge for the level ("Very low" .. "Very high").
func (l Level) Badge() string {
	switch l {
	case 1:
		return "Very low"
	case 2:
		return "Low"
	case 3:
		return "Medium"
	case 4:
		return "High"
	case 5:
		return "Very high"
	default:
		return "Unknown"
	}
}

// Label returns the display label, e.g. "Level 3 – Medium".
func (l Level) Label() string {
	return fmt.Sprintf("Level %d – %s", int(l), l.Badge())
}

// ParseLevel converts an integer into a Level, reporting whether it is a
// valid 1-5 rating. Out-of-range values are not usable levels.
func ParseLevel(n int) (Level, bool) {
	l := Level(n)
	return l, l.Valid()
}
