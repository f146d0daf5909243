package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teundejong/mlready/internal/cli/formatter"
)

func newBankCmd(app *App) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Show the question bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s\n", formatter.FormatBank(app.Bank, verbose))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include question texts")

	return cmd
}
