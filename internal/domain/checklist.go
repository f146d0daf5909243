package domain

// Checklist holds the raw checkbox state for one concept. A, B, and C describe
// increasing levels of digitization/standardization/automation; RealTime is
// the level-5 escalation condition; None is the explicit "none of the above"
// selection and is mutually exclusive with the other four.
type Checklist struct {
	A        bool
	B        bool
	C        bool
	RealTime bool
	None     bool
}

// Empty reports whether nothing is selected at all.
func (c Checklist) Empty() bool {
	return !c.A && !c.B && !c.C && !c.RealTime && !c.None
}

// Contradictory reports whether None is combined with any other selection.
// A contradictory checklist derives no level until resolved.
func (c Checklist) Contradictory() bool {
	return c.None && (c.A || c.B || c.C || c.RealTime)
}

// DerivedLevel computes the suggested level from the checkbox state.
// The base level is the count of {A,B,C} plus one; RealTime escalates to
// level 5 only when the base already reaches 4. None alone fixes the level
// at 1. Empty and contradictory states derive no level.
func (c Checklist) DerivedLevel() (Level, bool) {
	if c.Empty() || c.Contradictory() {
		return 0, false
	}
	if c.None {
		return 1, true
	}

	base := Level(1)
	for _, set := range []bool{c.A, c.B, c.C} {
		if set {
			base++
		}
	}
	if c.RealTime && base >= 4 {
		return 5, true
	}
	return base, true
}

// RehydrateChecklist maps a bare level back onto a consistent checkbox
// pattern. It is the fallback used when importing legacy exports that carry
// only a selected level: 1 becomes "none of the above"; higher levels set
// A, then B, then C, with RealTime only at level 5.
func RehydrateChecklist(l Level) Checklist {
	if !l.Valid() {
		return Checklist{}
	}
	if l == 1 {
		return Checklist{None: true}
	}
	return Checklist{
		A:        true,
		B:        l >= 3,
		C:        l >= 4,
		RealTime: l >= 5,
	}
}
