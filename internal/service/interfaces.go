package service

import (
	"context"
	"io"

	"github.com/teundejong/mlready/internal/csvio"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/recommend"
	"github.com/teundejong/mlready/internal/scoring"
)

// AssessmentService manages assessment session lifecycle.
type AssessmentService interface {
	Create(ctx context.Context, company string) (*domain.Assessment, error)
	Get(ctx context.Context, id string) (*domain.Assessment, error)
	// Latest returns the most recently touched assessment, the default
	// target when no --assessment flag is given.
	Latest(ctx context.Context) (*domain.Assessment, error)
	List(ctx context.Context) ([]*domain.Assessment, error)
	SetCompany(ctx context.Context, id, company string) error
	// Reset clears every answer of the assessment, checkbox state included.
	Reset(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// EligibilityService manages the SME and sector gates.
type EligibilityService interface {
	// SetInputs records SME inputs; changing any input makes a previous
	// confirmation stale until Check runs again.
	SetInputs(ctx context.Context, id string, employees int, turnoverM, balanceM float64) (*domain.Eligibility, error)
	// Check computes and confirms the SME verdict for the stored inputs.
	Check(ctx context.Context, id string) (bool, error)
	// SetSector records the logistics-sector answer (nil = not sure).
	SetSector(ctx context.Context, id string, isLogistics *bool) error
	// Acknowledge records explicit consent to continue past a failing gate.
	Acknowledge(ctx context.Context, id string, nonSME, nonLogistics bool) error
	Gate(ctx context.Context, id string) (*domain.Eligibility, error)
}

// Progress summarizes questionnaire completion.
type Progress struct {
	Answered int
	Total    int
	// Missing lists unanswered pairs in bank order; contradictory
	// checklists count as missing.
	Missing []domain.ConceptKey
}

// ResponseService records and resolves answers.
type ResponseService interface {
	SetChecklist(ctx context.Context, id string, key domain.ConceptKey, cl domain.Checklist) (*domain.Answer, error)
	Override(ctx context.Context, id string, key domain.ConceptKey, level domain.Level) (*domain.Answer, error)
	// ClearOverride reverts to the checklist-derived level, recomputed from
	// the current checkbox state.
	ClearOverride(ctx context.Context, id string, key domain.ConceptKey) (*domain.Answer, error)
	Get(ctx context.Context, id string, key domain.ConceptKey) (*domain.Answer, error)
	Responses(ctx context.Context, id string) (domain.ResponseSet, error)
	Progress(ctx context.Context, id string) (*Progress, error)
}

// EvaluationService computes the aggregate result for a complete assessment.
type EvaluationService interface {
	Evaluate(ctx context.Context, id string) (*scoring.Evaluation, error)
}

// AdviceService generates per-dimension recommendations.
type AdviceService interface {
	Advise(ctx context.Context, id string) ([]recommend.DimensionAdvice, error)
}

// TransferSummary is the outcome of a CSV import.
type TransferSummary struct {
	Schema  csvio.Schema
	Applied int
	Skipped int
	Company string
}

// TransferService moves assessment state to and from CSV files.
type TransferService interface {
	Export(ctx context.Context, id string, w io.Writer) error
	Import(ctx context.Context, id string, r io.Reader) (*TransferSummary, error)
}
