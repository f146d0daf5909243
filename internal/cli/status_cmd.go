package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teundejong/mlready/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show questionnaire progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			rs, err := app.Responses.Responses(ctx, a.ID)
			if err != nil {
				return err
			}
			progress, err := app.Responses.Progress(ctx, a.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatStatus(formatter.StatusData{
				Assessment: a,
				Bank:       app.Bank,
				Responses:  rs,
				Answered:   progress.Answered,
				Total:      progress.Total,
				Missing:    progress.Missing,
			}))
			return nil
		},
	}
}
