package formatter

import (
	"fmt"
	"strings"

	"github.com/teundejong/mlready/internal/bank"
)

// FormatBank renders the question bank overview.
func FormatBank(b *bank.Bank, verbose bool) string {
	var sb strings.Builder

	sb.WriteString(Header("Question Bank"))
	sb.WriteString("\n")

	for _, d := range b.Dimensions {
		sb.WriteString("\n")
		sb.WriteString(Bold(d.Name))
		sb.WriteString(Dim(fmt.Sprintf("  (minimum level %d)", int(d.MinimumLevel))))
		if d.Name == b.AnchorDimension {
			sb.WriteString("  " + StylePurple.Render("anchor"))
		}
		sb.WriteString("\n")

		for _, c := range d.Concepts {
			sb.WriteString("  " + Dim("•") + " " + c.Name + "\n")
			if verbose {
				sb.WriteString("    " + Dim(c.Question) + "\n")
			}
		}
	}

	return sb.String()
}
