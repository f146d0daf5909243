package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teundejong/mlready/internal/cli/formatter"
	"github.com/teundejong/mlready/internal/csvio"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Export the assessment to a CSV file (\"-\" for stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			if args[0] == "-" {
				return app.Transfers.Export(ctx, a.ID, os.Stdout)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}
			defer f.Close()

			if err := app.Transfers.Export(ctx, a.ID, f); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", args[0], err)
			}

			fmt.Printf("Exported assessment %s to %s\n", formatter.TruncID(a.ID), args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import answers from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			summary, err := app.Transfers.Import(ctx, a.ID, f)
			if err != nil {
				var missingCols *csvio.MissingColumnsError
				if errors.As(err, &missingCols) {
					return fmt.Errorf("%s does not look like an assessment export: %w", args[0], err)
				}
				return err
			}

			schemaNote := ""
			if summary.Schema == csvio.SchemaLegacy {
				schemaNote = formatter.Dim(" (legacy format, checkboxes rebuilt from levels)")
			}
			fmt.Printf("Imported %d answer(s)%s", summary.Applied, schemaNote)
			if summary.Skipped > 0 {
				fmt.Printf(", skipped %d unknown row(s)", summary.Skipped)
			}
			fmt.Println()
			return nil
		},
	}
}
