package formatter

import (
	"fmt"
	"strings"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/scoring"
)

// StatusData carries everything the status view renders.
type StatusData struct {
	Assessment *domain.Assessment
	Bank       *bank.Bank
	Responses  domain.ResponseSet
	Answered   int
	Total      int
	Missing    []domain.ConceptKey
}

// FormatStatus renders the questionnaire progress view.
func FormatStatus(data StatusData) string {
	var b strings.Builder

	b.WriteString(FormatAssessmentSummary(data.Assessment))
	b.WriteString("\n\n")
	b.WriteString(Header("Progress"))
	b.WriteString("\n\n")

	pct := 0.0
	if data.Total > 0 {
		pct = float64(data.Answered) / float64(data.Total)
	}
	b.WriteString(fmt.Sprintf("  %s  %d/%d answered\n\n", RenderProgress(pct, 24), data.Answered, data.Total))

	headers := []string{"Dimension", "Answered", "Level"}
	var rows [][]string
	for _, d := range data.Bank.Dimensions {
		answered := 0
		levels := make([]domain.Level, 0, len(d.Concepts))
		complete := true
		for _, c := range d.Concepts {
			a := data.Responses.Get(domain.ConceptKey{Dimension: d.Name, Concept: c.Name})
			if a == nil {
				complete = false
				continue
			}
			lvl, ok := a.FinalLevel()
			if !ok {
				complete = false
				continue
			}
			answered++
			levels = append(levels, lvl)
		}

		levelCell := Dim("pending")
		if complete {
			levelCell = LevelPill(scoring.FloorAvg(levels))
		}
		rows = append(rows, []string{
			d.Name,
			fmt.Sprintf("%d/%d", answered, len(d.Concepts)),
			levelCell,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if len(data.Missing) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Unanswered"))
		b.WriteString("\n\n")
		for _, key := range data.Missing {
			b.WriteString("  " + Dim("•") + " " + key.String() + "\n")
		}
	}

	return b.String()
}
