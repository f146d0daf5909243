package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/cli/formatter"
	"github.com/teundejong/mlready/internal/domain"
)

// mlreadyHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func mlreadyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// interactive reports whether stdout is a terminal; forms are refused
// otherwise.
func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Checklist option values used by the questionnaire multi-select.
const (
	optCheckA   = "a"
	optCheckB   = "b"
	optCheckC   = "c"
	optRealTime = "rt"
	optNone     = "none"
)

// formChecklist builds the multi-select for one concept. selected carries the
// current checkbox state in and the edited state out.
func formChecklist(key domain.ConceptKey, c *bank.Concept, selected *[]string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(key.String()).
				Description(c.Question).
				Options(
					huh.NewOption(c.Checks.A, optCheckA),
					huh.NewOption(c.Checks.B, optCheckB),
					huh.NewOption(c.Checks.C, optCheckC),
					huh.NewOption(c.Checks.Realtime, optRealTime),
					huh.NewOption("None of the above", optNone),
				).
				Value(selected),
		),
	).WithTheme(mlreadyHuhTheme()).WithShowHelp(false)
}

// checklistToOptions converts checkbox state to multi-select values.
func checklistToOptions(cl domain.Checklist) []string {
	var out []string
	if cl.A {
		out = append(out, optCheckA)
	}
	if cl.B {
		out = append(out, optCheckB)
	}
	if cl.C {
		out = append(out, optCheckC)
	}
	if cl.RealTime {
		out = append(out, optRealTime)
	}
	if cl.None {
		out = append(out, optNone)
	}
	return out
}

// optionsToChecklist converts multi-select values back to checkbox state.
func optionsToChecklist(selected []string) domain.Checklist {
	var cl domain.Checklist
	for _, v := range selected {
		switch v {
		case optCheckA:
			cl.A = true
		case optCheckB:
			cl.B = true
		case optCheckC:
			cl.C = true
		case optRealTime:
			cl.RealTime = true
		case optNone:
			cl.None = true
		}
	}
	return cl
}

// formConfirm creates a huh form for a yes/no confirmation.
func formConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(mlreadyHuhTheme()).WithShowHelp(false)
}

// validateNonNegativeInt accepts a non-negative integer.
func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateNonNegativeFloat accepts a non-negative number.
func validateNonNegativeFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
