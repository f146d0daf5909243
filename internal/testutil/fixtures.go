package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
)

// Assessment options
type AssessmentOption func(*domain.Assessment)

// WithGateOpen confirms a positive SME verdict and a logistics sector answer,
// opening both gates.
func WithGateOpen() AssessmentOption {
	return func(a *domain.Assessment) {
		yes := true
		a.Eligibility = domain.Eligibility{
			Employees:       40,
			TurnoverM:       8,
			BalanceM:        6,
			Confirmed:       true,
			IsSME:           &yes,
			SectorConfirmed: true,
			IsLogistics:     &yes,
		}
	}
}

// WithEligibility replaces the whole gate state.
func WithEligibility(e domain.Eligibility) AssessmentOption {
	return func(a *domain.Assessment) {
		a.Eligibility = e
	}
}

// NewTestAssessment builds an assessment fixture. Gates are closed unless an
// option opens them.
func NewTestAssessment(company string, opts ...AssessmentOption) *domain.Assessment {
	now := time.Now().UTC().Truncate(time.Second)
	a := &domain.Assessment{
		ID:        uuid.New().String(),
		Company:   company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestAnswer builds an answer whose checklist derives the given level.
func NewTestAnswer(key domain.ConceptKey, level domain.Level) *domain.Answer {
	return &domain.Answer{
		Key:       key,
		Checklist: domain.RehydrateChecklist(level),
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// NewTestBank builds a small two-dimension bank for unit tests that do not
// need the full embedded one.
func NewTestBank() *bank.Bank {
	return &bank.Bank{
		AnchorDimension: "1. Data",
		Dimensions: []bank.Dimension{
			testDimension("1. Data", 4),
			testDimension("2. Process", 3),
		},
	}
}

func testDimension(name string, min domain.Level) bank.Dimension {
	d := bank.Dimension{Name: name, MinimumLevel: min}
	for i := 1; i <= bank.ConceptsPerDimension; i++ {
		d.Concepts = append(d.Concepts, bank.Concept{
			Name:     fmt.Sprintf("%s concept %d", name, i),
			Question: fmt.Sprintf("How mature is %s concept %d?", name, i),
			Checks: bank.ChecklistPrompts{
				A:        "Basics are in place.",
				B:        "The practice is standardized.",
				C:        "The practice is measured.",
				Realtime: "It works in real time.",
			},
			Levels: []string{"Very low.", "Low.", "Medium.", "High.", "Very high."},
		})
	}
	return d
}

// FullResponseSet answers every question of the bank at the given level.
func FullResponseSet(b *bank.Bank, level domain.Level) domain.ResponseSet {
	rs := make(domain.ResponseSet)
	for _, key := range b.Keys() {
		rs.Set(NewTestAnswer(key, level))
	}
	return rs
}
