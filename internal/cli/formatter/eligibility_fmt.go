package formatter

import (
	"fmt"
	"strings"

	"github.com/teundejong/mlready/internal/domain"
)

// FormatEligibility renders the gate state for `mlready eligibility`.
func FormatEligibility(e *domain.Eligibility) string {
	var b strings.Builder

	b.WriteString(Header("Eligibility"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Employees        %d\n", e.Employees))
	b.WriteString(fmt.Sprintf("  Turnover         €%.1fm\n", e.TurnoverM))
	b.WriteString(fmt.Sprintf("  Balance sheet    €%.1fm\n", e.BalanceM))
	b.WriteString("\n")

	if !e.Confirmed {
		b.WriteString("  SME check        " + StyleYellow.Render("not confirmed") + Dim(" (run `mlready eligibility check`)") + "\n")
	} else {
		b.WriteString("  SME verdict      " + OptionalYesNo(e.IsSME))
		if e.IsSME != nil && !*e.IsSME && e.AllowNonSME {
			b.WriteString(Dim("  (continuing acknowledged)"))
		}
		b.WriteString("\n")
	}

	if !e.SectorConfirmed {
		b.WriteString("  Logistics sector " + StyleYellow.Render("not answered") + "\n")
	} else {
		b.WriteString("  Logistics sector " + OptionalYesNo(e.IsLogistics))
		if e.AllowNonLogistics && !(e.IsLogistics != nil && *e.IsLogistics) {
			b.WriteString(Dim("  (continuing acknowledged)"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  Gate             " + GatePill(e.GateOpen()) + "\n")
	return b.String()
}
