package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklist_DerivedLevel(t *testing.T) {
	tests := []struct {
		name      string
		cl        Checklist
		wantLevel Level
		wantOK    bool
	}{
		{"empty means unanswered", Checklist{}, 0, false},
		{"none alone is level 1", Checklist{None: true}, 1, true},
		{"one check", Checklist{A: true}, 2, true},
		{"two checks", Checklist{A: true, B: true}, 3, true},
		{"three checks", Checklist{A: true, B: true, C: true}, 4, true},
		{"realtime escalates a full base", Checklist{A: true, B: true, C: true, RealTime: true}, 5, true},
		{"realtime alone stays at base level 1", Checklist{RealTime: true}, 1, true},
		{"realtime with partial base stays at base", Checklist{A: true, RealTime: true}, 2, true},
		{"realtime with two checks stays at three", Checklist{A: true, B: true, RealTime: true}, 3, true},
		{"none with other checks is contradictory", Checklist{A: true, None: true}, 0, false},
		{"none with realtime is contradictory", Checklist{RealTime: true, None: true}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := tt.cl.DerivedLevel()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLevel, level)
			}
		})
	}
}

func TestChecklist_Contradictory(t *testing.T) {
	assert.False(t, Checklist{}.Contradictory())
	assert.False(t, Checklist{None: true}.Contradictory())
	assert.False(t, Checklist{A: true, B: true}.Contradictory())
	assert.True(t, Checklist{None: true, A: true}.Contradictory())
	assert.True(t, Checklist{None: true, RealTime: true}.Contradictory())
}

func TestRehydrateChecklist_RoundTrips(t *testing.T) {
	for l := LevelMin; l <= LevelMax; l++ {
		cl := RehydrateChecklist(l)
		derived, ok := cl.DerivedLevel()
		assert.True(t, ok, "level %d", l)
		assert.Equal(t, l, derived, "level %d", l)
	}
}

func TestRehydrateChecklist_Shape(t *testing.T) {
	assert.Equal(t, Checklist{None: true}, RehydrateChecklist(1))
	assert.Equal(t, Checklist{A: true}, RehydrateChecklist(2))
	assert.Equal(t, Checklist{A: true, B: true}, RehydrateChecklist(3))
	assert.Equal(t, Checklist{A: true, B: true, C: true}, RehydrateChecklist(4))
	assert.Equal(t, Checklist{A: true, B: true, C: true, RealTime: true}, RehydrateChecklist(5))
}
