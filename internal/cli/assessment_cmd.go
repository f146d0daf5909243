package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teundejong/mlready/internal/cli/formatter"
)

func newNewCmd(app *App) *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Assessments.Create(context.Background(), company)
			if err != nil {
				return err
			}
			fmt.Printf("Created assessment %s\n", formatter.FormatAssessmentSummary(a))
			fmt.Println(formatter.Dim("Run `mlready eligibility wizard` to pass the gate, then `mlready fill`."))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company name")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			assessments, err := app.Assessments.List(context.Background())
			if err != nil {
				return err
			}
			if len(assessments) == 0 {
				fmt.Println("No assessments found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatAssessmentList(assessments))
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove an assessment and its answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			if !force {
				if !interactive() {
					return fmt.Errorf("refusing to remove without --force in non-interactive mode")
				}
				confirmed := false
				form := formConfirm(fmt.Sprintf("Remove assessment %q and all its answers?", a.Company), &confirmed)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Assessments.Delete(ctx, a.ID); err != nil {
				return err
			}
			fmt.Printf("Removed assessment %s\n", formatter.TruncID(a.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation")

	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all answers of an assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			if !force {
				if !interactive() {
					return fmt.Errorf("refusing to reset without --force in non-interactive mode")
				}
				confirmed := false
				form := formConfirm("Clear every answer, checkbox state included?", &confirmed)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Assessments.Reset(ctx, a.ID); err != nil {
				return err
			}
			fmt.Printf("Reset assessment %s\n", formatter.TruncID(a.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation")

	return cmd
}
