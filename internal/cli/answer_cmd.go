package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teundejong/mlready/internal/cli/formatter"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/repository"
)

func newAnswerCmd(app *App) *cobra.Command {
	var checks string
	var none bool
	var override int
	var clearOverride bool

	cmd := &cobra.Command{
		Use:   "answer DIMENSION CONCEPT",
		Short: "Record or inspect one answer without the interactive form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			key, concept, err := resolveConceptKey(app.Bank, args[0], args[1])
			if err != nil {
				return err
			}

			switch {
			case clearOverride:
				answer, err := app.Responses.ClearOverride(ctx, a.ID, key)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatAnswer(concept, answer))
				return nil

			case cmd.Flags().Changed("override"):
				lvl, ok := domain.ParseLevel(override)
				if !ok {
					return fmt.Errorf("override level %d out of range 1-5", override)
				}
				answer, err := app.Responses.Override(ctx, a.ID, key, lvl)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatAnswer(concept, answer))
				return nil

			case cmd.Flags().Changed("check") || none:
				cl, err := parseChecks(checks)
				if err != nil {
					return err
				}
				cl.None = none
				answer, err := app.Responses.SetChecklist(ctx, a.ID, key, cl)
				if err != nil {
					return err
				}
				if cl.Contradictory() {
					fmt.Println(formatter.StyleYellow.Render("⚠ \"none\" cannot be combined with other checks; no level recorded."))
				}
				fmt.Printf("%s\n", formatter.FormatAnswer(concept, answer))
				return nil

			default:
				answer, err := app.Responses.Get(ctx, a.ID, key)
				if err != nil {
					if errors.Is(err, repository.ErrNotFound) {
						fmt.Printf("%s\n%s\n", formatter.Bold(key.String()), formatter.Dim("No answer recorded yet."))
						return nil
					}
					return err
				}
				fmt.Printf("%s\n", formatter.FormatAnswer(concept, answer))
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&checks, "check", "", "Checked statements, comma-separated subset of a,b,c,rt")
	cmd.Flags().BoolVar(&none, "none", false, "Check \"none of the above\"")
	cmd.Flags().IntVar(&override, "override", 0, "Set a manual override level (1-5)")
	cmd.Flags().BoolVar(&clearOverride, "clear-override", false, "Disable the manual override")

	return cmd
}

// parseChecks parses the --check flag value into checkbox state.
func parseChecks(s string) (domain.Checklist, error) {
	var cl domain.Checklist
	if strings.TrimSpace(s) == "" {
		return cl, nil
	}
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "a":
			cl.A = true
		case "b":
			cl.B = true
		case "c":
			cl.C = true
		case "rt", "realtime":
			cl.RealTime = true
		case "none":
			cl.None = true
		default:
			return cl, fmt.Errorf("unknown check %q, expected a, b, c, rt, or none", part)
		}
	}
	return cl, nil
}
