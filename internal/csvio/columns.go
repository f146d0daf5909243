// Package csvio serializes assessment state to and from the tabular CSV
// format: one row per (dimension, concept) pair, with the company and
// eligibility snapshot repeated on every row and read back from the first.
package csvio

import (
	"strconv"
	"strings"

	"github.com/teundejong/mlready/internal/domain"
)

// Column names of the full export schema, in order.
const (
	ColCompany           = "Company"
	ColEmployees         = "Employees"
	ColTurnover          = "Turnover (€mill)"
	ColBalance           = "Balance sheet (€mill)"
	ColEligibilityConf   = "Eligibility confirmed"
	ColIsSME             = "Is SME"
	ColAllowNonSME       = "Allow continue non-SME"
	ColSectorConf        = "Sector confirmed"
	ColIsLogistics       = "Is logistics"
	ColAllowNonLogistics = "Allow continue non-logistics"
	ColDimension         = "Dimension"
	ColConcept           = "Concept"
	ColQuestion          = "Question"
	ColCheckA            = "Check A"
	ColCheckB            = "Check B"
	ColCheckC            = "Check C"
	ColRealTime          = "Real-time"
	ColNone              = "None of the above"
	ColOverrideEnabled   = "Override enabled"
	ColOverrideLevel     = "Override level"
	ColFinalLevel        = "Final level"
	ColDimensionLevel    = "Dimension level"
	ColMinimumLevel      = "Minimum level"

	// ColSelectedLevel is the single level column of the legacy schema.
	ColSelectedLevel = "Selected level"
)

// exportHeader is the full-schema column order.
var exportHeader = []string{
	ColCompany,
	ColEmployees,
	ColTurnover,
	ColBalance,
	ColEligibilityConf,
	ColIsSME,
	ColAllowNonSME,
	ColSectorConf,
	ColIsLogistics,
	ColAllowNonLogistics,
	ColDimension,
	ColConcept,
	ColQuestion,
	ColCheckA,
	ColCheckB,
	ColCheckC,
	ColRealTime,
	ColNone,
	ColOverrideEnabled,
	ColOverrideLevel,
	ColFinalLevel,
	ColDimensionLevel,
	ColMinimumLevel,
}

// parseBool accepts the tolerant truthy vocabulary case-insensitively;
// anything else is false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on":
		return true
	}
	return false
}

// parseOptionalBool distinguishes explicit yes/no from absent or
// unrecognizable values, which come back as nil.
func parseOptionalBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on":
		v := true
		return &v
	case "false", "0", "no", "n", "off":
		v := false
		return &v
	}
	return nil
}

// parseLevel parses a 1-5 level; anything else is discarded.
func parseLevel(s string) (domain.Level, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return domain.ParseLevel(int(f))
}

func parseInt(s string) *int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	v := int(f)
	return &v
}

func parseFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatOptionalBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func formatLevel(l domain.Level, ok bool) string {
	if !ok {
		return ""
	}
	return strconv.Itoa(int(l))
}
