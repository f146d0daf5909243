package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
)

// Schema identifies which export format a CSV file carries. Detection is by
// column presence, not an explicit version flag.
type Schema string

const (
	// SchemaFull has checkbox columns, override columns, and "Final level".
	SchemaFull Schema = "full"
	// SchemaLegacy has only a "Selected level" column.
	SchemaLegacy Schema = "legacy"
)

// MissingColumnsError reports required columns absent from the header.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Globals are the assessment-wide fields read from the first data row only.
// Pointer fields are nil when the column is absent or the value unusable.
type Globals struct {
	Company              string
	Employees            *int
	TurnoverM            *float64
	BalanceM             *float64
	EligibilityConfirmed *bool
	// IsSME and IsLogistics are tri-state in the file (yes/no/blank); the
	// Set flags record column presence so a blank can clear a stale value.
	IsSME             *bool
	IsSMESet          bool
	IsLogistics       *bool
	IsLogisticsSet    bool
	AllowNonSME       *bool
	SectorConfirmed   *bool
	AllowNonLogistics *bool
}

// Result is a parsed import: the detected schema, first-row globals, and the
// fully-built answer per matched (dimension, concept) pair. Rows that do not
// match the current bank are counted but otherwise skipped.
type Result struct {
	Schema  Schema
	Globals Globals
	Answers map[domain.ConceptKey]*domain.Answer
	Matched int
	Skipped int
}

// Import parses a CSV export against the current bank. It accepts both the
// full and the legacy schema. Unknown (dimension, concept) pairs are skipped
// silently, keeping imports forward-compatible with bank changes; invalid
// levels and booleans are discarded per field, never fatal.
func Import(r io.Reader, b *bank.Bank) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range []string{ColDimension, ColConcept} {
		if _, ok := col[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Missing: missing}
	}

	hasCheckboxCols := hasAll(col, ColCheckA, ColCheckB, ColCheckC, ColRealTime, ColNone)
	hasOverrideCols := hasAll(col, ColOverrideEnabled, ColOverrideLevel)

	levelCol := ""
	if _, ok := col[ColFinalLevel]; ok {
		levelCol = ColFinalLevel
	} else if _, ok := col[ColSelectedLevel]; ok {
		levelCol = ColSelectedLevel
	}

	res := &Result{
		Schema:  SchemaLegacy,
		Answers: make(map[domain.ConceptKey]*domain.Answer),
	}
	if hasCheckboxCols {
		res.Schema = SchemaFull
	}

	field := func(row []string, name string) (string, bool) {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	first := true
	now := time.Now().UTC()

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		if first {
			res.Globals = readGlobals(row, field)
			first = false
		}

		dim, _ := field(row, ColDimension)
		concept, _ := field(row, ColConcept)
		key := domain.ConceptKey{
			Dimension: strings.TrimSpace(dim),
			Concept:   strings.TrimSpace(concept),
		}
		if !b.Contains(key) {
			res.Skipped++
			continue
		}

		answer := &domain.Answer{Key: key, UpdatedAt: now}

		if hasCheckboxCols {
			a, _ := field(row, ColCheckA)
			bb, _ := field(row, ColCheckB)
			c, _ := field(row, ColCheckC)
			rt, _ := field(row, ColRealTime)
			none, _ := field(row, ColNone)
			answer.Checklist = domain.Checklist{
				A:        parseBool(a),
				B:        parseBool(bb),
				C:        parseBool(c),
				RealTime: parseBool(rt),
				None:     parseBool(none),
			}
		}

		if hasOverrideCols {
			enabled, _ := field(row, ColOverrideEnabled)
			answer.OverrideEnabled = parseBool(enabled)
			if raw, ok := field(row, ColOverrideLevel); ok {
				if lvl, valid := parseLevel(raw); valid {
					answer.OverrideLevel = lvl
				}
			}
			// An override without a usable level cannot be authoritative.
			if answer.OverrideEnabled && !answer.OverrideLevel.Valid() {
				answer.OverrideEnabled = false
			}
		}

		if !hasCheckboxCols && levelCol != "" {
			// Legacy rows carry only a selected level; rebuild a consistent
			// checkbox pattern so the derived level round-trips.
			if raw, ok := field(row, levelCol); ok {
				if lvl, valid := parseLevel(raw); valid {
					answer.Checklist = domain.RehydrateChecklist(lvl)
				}
			}
		}

		res.Answers[key] = answer
		res.Matched++
	}

	return res, nil
}

func readGlobals(row []string, field func([]string, string) (string, bool)) Globals {
	var g Globals

	if v, ok := field(row, ColCompany); ok {
		g.Company = strings.TrimSpace(v)
	}
	if v, ok := field(row, ColEmployees); ok {
		g.Employees = parseInt(v)
	}
	if v, ok := field(row, ColTurnover); ok {
		g.TurnoverM = parseFloat(v)
	}
	if v, ok := field(row, ColBalance); ok {
		g.BalanceM = parseFloat(v)
	}
	if v, ok := field(row, ColEligibilityConf); ok {
		b := parseBool(v)
		g.EligibilityConfirmed = &b
	}
	if v, ok := field(row, ColIsSME); ok {
		g.IsSME = parseOptionalBool(v)
		g.IsSMESet = true
	}
	if v, ok := field(row, ColAllowNonSME); ok {
		b := parseBool(v)
		g.AllowNonSME = &b
	}
	if v, ok := field(row, ColSectorConf); ok {
		b := parseBool(v)
		g.SectorConfirmed = &b
	}
	if v, ok := field(row, ColIsLogistics); ok {
		g.IsLogistics = parseOptionalBool(v)
		g.IsLogisticsSet = true
	}
	if v, ok := field(row, ColAllowNonLogistics); ok {
		b := parseBool(v)
		g.AllowNonLogistics = &b
	}

	return g
}

func hasAll(col map[string]int, names ...string) bool {
	for _, n := range names {
		if _, ok := col[n]; !ok {
			return false
		}
	}
	return true
}
