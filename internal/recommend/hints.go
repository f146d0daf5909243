// Package recommend turns dimension levels and their configured minimums
// into ordered, concrete improvement advice.
package recommend

import (
	"fmt"
	"strings"

	"github.com/teundejong/mlready/internal/domain"
)

// genericHints is the per-from-level action template table.
var genericHints = map[domain.Level]string{
	1: "Move from ad-hoc/manual to basic documented and digital practice.",
	2: "Standardize: define ownership, rules, and a repeatable routine.",
	3: "Automate and integrate into daily workflows (dashboards, checks, stable integrations).",
	4: "Scale and embed into governance: monitoring, feedback loops, continuous improvement.",
}

// Concept names with specialized level-2/3 hints, keyed by dimension number
// prefix. These are the known high-leverage concepts.
var dataQualityConcepts = map[string]bool{
	"Data Consistency & Quality": true,
	"Data Integration":           true,
	"Historical Data":            true,
}

var securityConcepts = map[string]bool{
	"Access Control & Authentication": true,
	"Cybersecurity Measures":          true,
	"Data Protection & Privacy":       true,
}

var processConcepts = map[string]bool{
	"Process Standardization": true,
	"Performance Monitoring":  true,
	"Data-Driven Decisions":   true,
}

// ActionHint returns the textual hint for moving one concept from one level
// to the next. The generic table applies everywhere; data-quality, security,
// and process concepts get specialized level-2 and level-3 hints.
func ActionHint(dimension, concept string, from, to domain.Level) string {
	hints := map[domain.Level]string{
		1: genericHints[1],
		2: genericHints[2],
		3: genericHints[3],
		4: genericHints[4],
	}

	switch {
	case strings.HasPrefix(dimension, "1.") && dataQualityConcepts[concept]:
		hints[2] = "Define data standards and validation rules; standardize identifiers, formats, and required fields."
		hints[3] = "Add automated checks (outliers/missing), centralize datasets, and stabilize integrations."
	case strings.HasPrefix(dimension, "6.") && securityConcepts[concept]:
		hints[2] = "Implement RBAC basics and enforce MFA; document and communicate security procedures."
		hints[3] = "Add logging/audit trails, monitoring, routine vulnerability checks, and an incident response playbook."
	case strings.HasPrefix(dimension, "4.") && processConcepts[concept]:
		hints[2] = "Write short SOPs and define KPIs; review them on a fixed cadence."
		hints[3] = "Embed dashboards/alerts into daily work; assign owners and escalation routines."
	}

	if h, ok := hints[from]; ok {
		return h
	}
	return fmt.Sprintf("Improve from Level %d toward Level %d with structured steps.", int(from), int(to))
}
