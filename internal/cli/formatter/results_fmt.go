package formatter

import (
	"fmt"
	"strings"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/scoring"
)

// FormatEvaluation renders the aggregate result view.
func FormatEvaluation(b *bank.Bank, ev *scoring.Evaluation) string {
	var sb strings.Builder

	sb.WriteString(Header("Readiness"))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Overall          %s\n", LevelPill(ev.OverallLevel)))
	sb.WriteString(fmt.Sprintf("  Score            %s  %.2f\n", RenderProgress(ev.NMRS, 24), ev.NMRS))
	sb.WriteString(fmt.Sprintf("  ML-ready         %s\n", ReadyPill(ev.MLReady)))
	sb.WriteString(fmt.Sprintf("  Meets minimums   %s\n", YesNo(ev.MeetsMinimums)))
	sb.WriteString("\n")

	headers := []string{"Dimension", "Level", "Minimum", ""}
	rows := make([][]string, 0, len(ev.DimensionOrder))
	for _, name := range ev.DimensionOrder {
		lvl := ev.DimensionLevels[name]
		min := domain.Level(0)
		if d := b.Dimension(name); d != nil {
			min = d.MinimumLevel
		}

		verdict := StyleGreen.Render("✔")
		if lvl < min {
			verdict = StyleRed.Render("✖")
		}
		rows = append(rows, []string{
			name,
			LevelPill(lvl),
			fmt.Sprintf("%d", int(min)),
			verdict,
		})
	}
	sb.WriteString(RenderTable(headers, rows))

	return sb.String()
}
