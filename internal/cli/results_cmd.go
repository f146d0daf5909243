package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teundejong/mlready/internal/cli/formatter"
	"github.com/teundejong/mlready/internal/scoring"
	"github.com/teundejong/mlready/internal/service"
)

func newResultsCmd(app *App) *cobra.Command {
	var noAdvice bool

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the readiness report and recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			ev, err := app.Evaluations.Evaluate(ctx, a.ID)
			if err != nil {
				var incomplete *scoring.IncompleteError
				if errors.As(err, &incomplete) {
					fmt.Printf("%s\n", formatter.StyleYellow.Render(
						fmt.Sprintf("Assessment incomplete: %d question(s) unanswered.", len(incomplete.Missing))))
					fmt.Println(formatter.Dim("Run `mlready status` to see which, or `mlready fill --missing`."))
					return nil
				}
				var svcErr *service.Error
				if errors.As(err, &svcErr) && svcErr.Code == service.ErrGateClosed {
					return fmt.Errorf("%s", svcErr.Message)
				}
				return err
			}

			fmt.Printf("%s\n%s\n", formatter.FormatAssessmentSummary(a), formatter.FormatEvaluation(app.Bank, ev))

			if !noAdvice {
				advice, err := app.Advice.Advise(ctx, a.ID)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatAdvice(advice))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noAdvice, "no-advice", false, "Skip the recommendations section")

	return cmd
}
