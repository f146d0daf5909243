package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/scoring"
)

// Export writes one row per (dimension, concept) pair of the bank. Export is
// always available: unanswered pairs still emit a row with blank level
// fields, and the dimension-level column is filled only when all five
// concepts of that dimension are resolved.
func Export(w io.Writer, b *bank.Bank, a *domain.Assessment, rs domain.ResponseSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	e := a.Eligibility
	globals := []string{
		a.Company,
		strconv.Itoa(e.Employees),
		strconv.FormatFloat(e.TurnoverM, 'f', -1, 64),
		strconv.FormatFloat(e.BalanceM, 'f', -1, 64),
		formatBool(e.Confirmed),
		formatOptionalBool(e.IsSME),
		formatBool(e.AllowNonSME),
		formatBool(e.SectorConfirmed),
		formatOptionalBool(e.IsLogistics),
		formatBool(e.AllowNonLogistics),
	}

	for _, d := range b.Dimensions {
		dimLevel := dimensionLevelIfComplete(&d, rs)

		for _, c := range d.Concepts {
			key := domain.ConceptKey{Dimension: d.Name, Concept: c.Name}
			var answer domain.Answer
			if stored := rs.Get(key); stored != nil {
				answer = *stored
			}

			finalLevel, hasFinal := answer.FinalLevel()
			row := append(append([]string{}, globals...),
				d.Name,
				c.Name,
				c.Question,
				formatBool(answer.Checklist.A),
				formatBool(answer.Checklist.B),
				formatBool(answer.Checklist.C),
				formatBool(answer.Checklist.RealTime),
				formatBool(answer.Checklist.None),
				formatBool(answer.OverrideEnabled),
				formatLevel(answer.OverrideLevel, answer.OverrideLevel.Valid()),
				formatLevel(finalLevel, hasFinal),
				dimLevel,
				strconv.Itoa(int(d.MinimumLevel)),
			)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing csv row for %s: %w", key, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// dimensionLevelIfComplete returns the floor-averaged dimension level as a
// string, or "" when any of the dimension's concepts is unresolved.
func dimensionLevelIfComplete(d *bank.Dimension, rs domain.ResponseSet) string {
	levels := make([]domain.Level, 0, len(d.Concepts))
	for _, c := range d.Concepts {
		a := rs.Get(domain.ConceptKey{Dimension: d.Name, Concept: c.Name})
		if a == nil {
			return ""
		}
		lvl, ok := a.FinalLevel()
		if !ok {
			return ""
		}
		levels = append(levels, lvl)
	}
	return strconv.Itoa(int(scoring.FloorAvg(levels)))
}
