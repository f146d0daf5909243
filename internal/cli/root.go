package cli

import (
	"github.com/spf13/cobra"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/service"
)

// App holds the question bank and all service interfaces used by CLI commands.
type App struct {
	Bank        *bank.Bank
	Assessments service.AssessmentService
	Eligibility service.EligibilityService
	Responses   service.ResponseService
	Evaluations service.EvaluationService
	Advice      service.AdviceService
	Transfers   service.TransferService

	// AssessmentRef is the --assessment flag value; empty means the most
	// recently touched assessment.
	AssessmentRef string
}

// NewRootCmd creates the top-level "mlready" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "mlready",
		Short: "ML readiness self-assessment for logistics SMEs",
	}

	root.PersistentFlags().StringVarP(&app.AssessmentRef, "assessment", "a", "", "Assessment ID or ID prefix (default: most recent)")

	root.AddCommand(
		newNewCmd(app),
		newListCmd(app),
		newRemoveCmd(app),
		newResetCmd(app),
		newEligibilityCmd(app),
		newFillCmd(app),
		newAnswerCmd(app),
		newStatusCmd(app),
		newResultsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newBankCmd(app),
	)

	return root
}
