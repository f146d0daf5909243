package recommend

import (
	"sort"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
)

// maintenanceAdvice is emitted for dimensions that already meet their minimum.
var maintenanceAdvice = []string{
	"Stability should be maintained (avoid introducing new instability).",
	"Monitoring and documentation can be strengthened to preserve consistency.",
}

// Step is one level transition with its action hint.
type Step struct {
	From domain.Level
	To   domain.Level
	Hint string
}

// ConceptPlan enumerates the steps to lift one concept to the dimension
// minimum.
type ConceptPlan struct {
	Concept string
	Current domain.Level
	Steps   []Step
}

// DimensionAdvice is the recommendation output for one dimension.
type DimensionAdvice struct {
	Dimension string
	Current   domain.Level
	Minimum   domain.Level
	// Stable is true when the dimension meets its minimum; the advice is
	// then maintenance-oriented and Gap, Priority, and Plans are empty.
	Stable bool
	// Gap is minimum - current when below minimum.
	Gap int
	// Progress is min(1, current/minimum); 1.0 for stable dimensions.
	Progress float64
	// Priority names the two weakest concepts (ties broken by bank order).
	Priority    []string
	Plans       []ConceptPlan
	Maintenance []string
}

// Advise produces per-dimension recommendations in bank order. Concept levels
// must be complete; callers gate on completeness first (the same contract as
// scoring.Evaluate).
func Advise(b *bank.Bank, conceptLevels map[domain.ConceptKey]domain.Level, dimensionLevels map[string]domain.Level) []DimensionAdvice {
	out := make([]DimensionAdvice, 0, len(b.Dimensions))

	for _, d := range b.Dimensions {
		current := dimensionLevels[d.Name]
		target := d.MinimumLevel

		adv := DimensionAdvice{
			Dimension: d.Name,
			Current:   current,
			Minimum:   target,
		}

		if current >= target {
			adv.Stable = true
			adv.Progress = 1.0
			adv.Maintenance = maintenanceAdvice
			out = append(out, adv)
			continue
		}

		adv.Gap = int(target - current)
		adv.Progress = float64(current) / float64(target)
		if adv.Progress > 1 {
			adv.Progress = 1
		}

		// Sort concepts by level ascending, bank order on ties.
		type ranked struct {
			name  string
			level domain.Level
			order int
		}
		rankedConcepts := make([]ranked, 0, len(d.Concepts))
		for i, c := range d.Concepts {
			lvl := conceptLevels[domain.ConceptKey{Dimension: d.Name, Concept: c.Name}]
			rankedConcepts = append(rankedConcepts, ranked{name: c.Name, level: lvl, order: i})
		}
		sort.SliceStable(rankedConcepts, func(i, j int) bool {
			if rankedConcepts[i].level != rankedConcepts[j].level {
				return rankedConcepts[i].level < rankedConcepts[j].level
			}
			return rankedConcepts[i].order < rankedConcepts[j].order
		})

		for _, rc := range rankedConcepts[:2] {
			adv.Priority = append(adv.Priority, rc.name)
		}

		// Every concept below the minimum gets a step-by-step plan, not
		// just the two priority ones.
		for _, rc := range rankedConcepts {
			if rc.level >= target {
				continue
			}
			plan := ConceptPlan{Concept: rc.name, Current: rc.level}
			for from := rc.level; from < target; from++ {
				plan.Steps = append(plan.Steps, Step{
					From: from,
					To:   from + 1,
					Hint: ActionHint(d.Name, rc.name, from, from+1),
				})
			}
			adv.Plans = append(adv.Plans, plan)
		}

		out = append(out, adv)
	}

	return out
}
