package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teundejong/mlready/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelColor returns the style for a readiness level: red below 3, yellow at
// 3, green above.
func LevelColor(l domain.Level) lipgloss.Style {
	switch {
	case l >= 4:
		return StyleGreen
	case l == 3:
		return StyleYellow
	case l.Valid():
		return StyleRed
	default:
		return StyleDim
	}
}

// LevelPill returns a colored level label such as "● Level 3 – Medium".
func LevelPill(l domain.Level) string {
	if !l.Valid() {
		return StyleDim.Render("○ unanswered")
	}
	return LevelColor(l).Render("● " + l.Label())
}

// GatePill returns a colored open/closed indicator for the eligibility gate.
func GatePill(open bool) string {
	if open {
		return StyleGreen.Render("● OPEN")
	}
	return StyleRed.Render("● CLOSED")
}

// ReadyPill renders the ML-ready verdict.
func ReadyPill(ready bool) string {
	if ready {
		return StyleGreen.Render("✔ ML-READY")
	}
	return StyleRed.Render("✖ NOT ML-READY")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
