package formatter

import (
	"fmt"

	"github.com/teundejong/mlready/internal/domain"
)

// FormatAssessmentList renders the assessment table for `mlready list`.
func FormatAssessmentList(assessments []*domain.Assessment) string {
	headers := []string{"ID", "Company", "Gate", "Updated"}
	rows := make([][]string, 0, len(assessments))

	for _, a := range assessments {
		company := a.Company
		if company == "" {
			company = Dim("(unnamed)")
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			company,
			GatePill(a.Eligibility.GateOpen()),
			a.UpdatedAt.Local().Format("Jan 2, 2006 15:04"),
		})
	}

	return RenderTable(headers, rows)
}

// FormatAssessmentSummary renders the one-line identification used above other
// views.
func FormatAssessmentSummary(a *domain.Assessment) string {
	company := a.Company
	if company == "" {
		company = "(unnamed)"
	}
	return fmt.Sprintf("%s %s", Bold(company), TruncID(a.ID))
}
