package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// CheckMark renders a checkbox cell, "[x]" when checked.
func CheckMark(checked bool) string {
	if checked {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// YesNo renders a yes/no value with pass/fail coloring.
func YesNo(v bool) string {
	if v {
		return StyleGreen.Render("yes")
	}
	return StyleRed.Render("no")
}

// OptionalYesNo renders a tri-state value; nil means undetermined.
func OptionalYesNo(v *bool) string {
	if v == nil {
		return StyleDim.Render("--")
	}
	return YesNo(*v)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
