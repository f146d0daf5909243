package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teundejong/mlready/internal/cli/formatter"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/service"
)

func newFillCmd(app *App) *cobra.Command {
	var missingOnly bool
	var dimension string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Walk through the questionnaire interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive() {
				return fmt.Errorf("fill needs a terminal; use `mlready answer` for scripted input")
			}

			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			rs, err := app.Responses.Responses(ctx, a.ID)
			if err != nil {
				return err
			}

			keys := app.Bank.Keys()
			if dimension != "" {
				d, err := resolveDimension(app.Bank, dimension)
				if err != nil {
					return err
				}
				keys = keys[:0]
				for _, c := range d.Concepts {
					keys = append(keys, domain.ConceptKey{Dimension: d.Name, Concept: c.Name})
				}
			}

			asked := 0
			for _, key := range keys {
				existing := rs.Get(key)
				if missingOnly && existing != nil {
					if _, ok := existing.FinalLevel(); ok {
						continue
					}
				}

				c := app.Bank.Concept(key.Dimension, key.Concept)
				var selected []string
				if existing != nil {
					selected = checklistToOptions(existing.Checklist)
				}

				if err := formChecklist(key, c, &selected).Run(); err != nil {
					return err
				}

				cl := optionsToChecklist(selected)
				answer, err := app.Responses.SetChecklist(ctx, a.ID, key, cl)
				if err != nil {
					var svcErr *service.Error
					if errors.As(err, &svcErr) && svcErr.Code == service.ErrGateClosed {
						return fmt.Errorf("%s; run `mlready eligibility wizard` first", svcErr.Message)
					}
					return err
				}
				asked++

				if cl.Contradictory() {
					fmt.Println(formatter.StyleYellow.Render("⚠ \"none\" cannot be combined with other checks; no level recorded."))
					continue
				}
				if level, ok := answer.FinalLevel(); ok {
					fmt.Printf("%s %s\n", formatter.Dim(key.String()), formatter.LevelPill(level))
				}
			}

			if asked == 0 {
				fmt.Println("Nothing to fill; every question already has an answer.")
				return nil
			}

			progress, err := app.Responses.Progress(ctx, a.ID)
			if err != nil {
				return err
			}
			fmt.Printf("\n%d/%d answered.\n", progress.Answered, progress.Total)
			if len(progress.Missing) == 0 {
				fmt.Println(formatter.Dim("Run `mlready results` to see the readiness report."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&missingOnly, "missing", false, "Only ask unanswered questions")
	cmd.Flags().StringVar(&dimension, "dimension", "", "Limit to one dimension (name, number, or substring)")

	return cmd
}
