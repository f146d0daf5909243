package formatter

import (
	"fmt"
	"strings"

	"github.com/teundejong/mlready/internal/recommend"
)

// FormatAdvice renders the per-dimension recommendation view.
func FormatAdvice(advice []recommend.DimensionAdvice) string {
	var b strings.Builder

	b.WriteString(Header("Recommendations"))
	b.WriteString("\n")

	for _, adv := range advice {
		b.WriteString("\n")
		b.WriteString(Bold(adv.Dimension))
		b.WriteString("  " + LevelPill(adv.Current))
		b.WriteString(Dim(fmt.Sprintf("  (minimum %d)", int(adv.Minimum))))
		b.WriteString("\n")
		b.WriteString("  " + RenderProgress(adv.Progress, 20) + "\n")

		if adv.Stable {
			for _, m := range adv.Maintenance {
				b.WriteString("  " + StyleGreen.Render("✔") + " " + m + "\n")
			}
			continue
		}

		b.WriteString("  " + StyleYellow.Render(fmt.Sprintf("Gap: %d level(s) below minimum", adv.Gap)) + "\n")
		if len(adv.Priority) > 0 {
			b.WriteString("  Focus first: " + StylePurple.Render(strings.Join(adv.Priority, ", ")) + "\n")
		}

		for _, plan := range adv.Plans {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim("•"), Bold(plan.Concept)))
			for _, step := range plan.Steps {
				b.WriteString(fmt.Sprintf("      %s %s\n",
					Dim(fmt.Sprintf("%d→%d", int(step.From), int(step.To))),
					step.Hint,
				))
			}
		}
	}

	return b.String()
}
