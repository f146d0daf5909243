package formatter

import (
	"fmt"
	"strings"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
)

// FormatAnswer renders one recorded answer with its checklist state and the
// resolved level.
func FormatAnswer(c *bank.Concept, a *domain.Answer) string {
	var b strings.Builder

	b.WriteString(Bold(a.Key.String()) + "\n")
	b.WriteString(Dim(c.Question) + "\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", CheckMark(a.Checklist.A), c.Checks.A))
	b.WriteString(fmt.Sprintf("  %s %s\n", CheckMark(a.Checklist.B), c.Checks.B))
	b.WriteString(fmt.Sprintf("  %s %s\n", CheckMark(a.Checklist.C), c.Checks.C))
	b.WriteString(fmt.Sprintf("  %s %s\n", CheckMark(a.Checklist.RealTime), c.Checks.Realtime))
	b.WriteString(fmt.Sprintf("  %s None of the above\n", CheckMark(a.Checklist.None)))
	b.WriteString("\n")

	if a.Checklist.Contradictory() {
		b.WriteString("  " + StyleYellow.Render("⚠ \"none\" combined with other checks; no level derived") + "\n")
	}

	level, ok := a.FinalLevel()
	b.WriteString("  Level  " + LevelPill(level))
	if ok && a.OverrideEnabled {
		b.WriteString(Dim("  (manual override)"))
	}
	b.WriteString("\n")

	if ok {
		if desc := c.LevelDescription(level); desc != "" {
			b.WriteString("  " + Dim(desc) + "\n")
		}
	}

	return b.String()
}
