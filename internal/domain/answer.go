package domain

import "time"

// ConceptKey identifies one (dimension, concept) pair in the question bank.
type ConceptKey struct {
	Dimension string
	Concept   string
}

func (k ConceptKey) String() string {
	return k.Dimension + " → " + k.Concept
}

// Answer is the recorded state for one concept: the raw checklist plus an
// optional manual override. The final level is always derived on read:
// the override while enabled, the checklist derivation otherwise.
type Answer struct {
	Key             ConceptKey
	Checklist       Checklist
	OverrideEnabled bool
	// OverrideLevel is meaningful only while OverrideEnabled is set; it is
	// retained after disabling so re-enabling starts from the last choice.
	OverrideLevel Level
	UpdatedAt     time.Time
}

// FinalLevel resolves the authoritative level for this answer. Override takes
// precedence while enabled; otherwise the level is recomputed from the current
// checkbox state, never from a stale override.
func (a *Answer) FinalLevel() (Level, bool) {
	if a.OverrideEnabled && a.OverrideLevel.Valid() {
		return a.OverrideLevel, true
	}
	return a.Checklist.DerivedLevel()
}

// EnableOverride turns on the manual override at the given level.
func (a *Answer) EnableOverride(l Level) {
	a.OverrideEnabled = true
	a.OverrideLevel = l
}

// DisableOverride reverts to the checklist-derived level.
func (a *Answer) DisableOverride() {
	a.OverrideEnabled = false
}

// ResponseSet is the collection of answers keyed by (dimension, concept).
type ResponseSet map[ConceptKey]*Answer

// Get returns the answer for key, or nil.
func (rs ResponseSet) Get(key ConceptKey) *Answer {
	return rs[key]
}

// Set stores the answer under its own key.
func (rs ResponseSet) Set(a *Answer) {
	rs[a.Key] = a
}

// Levels returns the resolved final level for every answer that has one.
func (rs ResponseSet) Levels() map[ConceptKey]Level {
	out := make(map[ConceptKey]Level, len(rs))
	for key, a := range rs {
		if lvl, ok := a.FinalLevel(); ok {
			out[key] = lvl
		}
	}
	return out
}
