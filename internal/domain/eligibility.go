package domain

// SME thresholds from the EU definition.
const (
	SMEMaxEmployees     = 250
	SMEMaxTurnoverM     = 50.0
	SMEMaxBalanceSheetM = 43.0
)

// IsSME is the EU SME predicate: fewer than 250 employees, and either
// turnover at most €50m or balance sheet total at most €43m.
func IsSME(employees int, turnoverM, balanceM float64) bool {
	return employees < SMEMaxEmployees && (turnoverM <= SMEMaxTurnoverM || balanceM <= SMEMaxBalanceSheetM)
}

// Eligibility is the gate state for one assessment: the SME inputs and
// verdict, plus the independent logistics-sector applicability gate. Both
// gates are soft-blocks; the Allow* acknowledgments let a user proceed past
// a failing gate explicitly.
type Eligibility struct {
	Employees int
	TurnoverM float64
	BalanceM  float64

	// Confirmed is true only while the SME verdict matches the inputs above;
	// changing any input invalidates it until the check is re-run.
	Confirmed bool
	// IsSME is the verdict recorded at confirmation time. Nil means the
	// check has never been run.
	IsSME       *bool
	AllowNonSME bool

	SectorConfirmed bool
	// IsLogistics is nil for "not sure".
	IsLogistics       *bool
	AllowNonLogistics bool
}

// Check computes and records the SME verdict for the current inputs.
func (e *Eligibility) Check() bool {
	sme := IsSME(e.Employees, e.TurnoverM, e.BalanceM)
	e.IsSME = &sme
	e.Confirmed = true
	return sme
}

// SetInputs records new SME inputs. Any change makes a prior confirmation
// stale, forcing a re-check.
func (e *Eligibility) SetInputs(employees int, turnoverM, balanceM float64) {
	if e.Employees != employees || e.TurnoverM != turnoverM || e.BalanceM != balanceM {
		e.Confirmed = false
		e.IsSME = nil
	}
	e.Employees = employees
	e.TurnoverM = turnoverM
	e.BalanceM = balanceM
}

// SetSector records the logistics-sector answer (nil = not sure).
func (e *Eligibility) SetSector(isLogistics *bool) {
	e.IsLogistics = isLogistics
	e.SectorConfirmed = true
}

// SMEPassed reports whether the SME gate allows continuing: a confirmed
// positive verdict, or an explicit acknowledgment to proceed anyway.
func (e *Eligibility) SMEPassed() bool {
	if !e.Confirmed {
		return false
	}
	if e.IsSME != nil && *e.IsSME {
		return true
	}
	return e.AllowNonSME
}

// SectorPassed reports whether the sector gate allows continuing.
func (e *Eligibility) SectorPassed() bool {
	if !e.SectorConfirmed {
		return false
	}
	if e.IsLogistics != nil && *e.IsLogistics {
		return true
	}
	return e.AllowNonLogistics
}

// GateOpen reports whether both gates allow access to the questionnaire.
func (e *Eligibility) GateOpen() bool {
	return e.SMEPassed() && e.SectorPassed()
}
