package service

import (
	"context"
	"io"
	"time"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/csvio"
	"github.com/teundejong/mlready/internal/db"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/repository"
)

type transferService struct {
	uow         db.UnitOfWork
	assessments repository.AssessmentRepo
	answers     repository.AnswerRepo
	bank        *bank.Bank
	obs         Observer
}

// NewTransferService creates a TransferService. Imports run inside a single
// transaction via uow.
func NewTransferService(uow db.UnitOfWork, assessments repository.AssessmentRepo, answers repository.AnswerRepo, b *bank.Bank, obs Observer) TransferService {
	return &transferService{uow: uow, assessments: assessments, answers: answers, bank: b, obs: obs}
}

// Export writes the assessment as CSV. It works at any completion state, gate
// included; exporting is how partial work moves between machines.
func (s *transferService) Export(ctx context.Context, id string, w io.Writer) error {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	rs, err := s.answers.ListByAssessment(ctx, id)
	if err != nil {
		return err
	}
	if err := csvio.Export(w, s.bank, a, rs); err != nil {
		return err
	}
	s.obs.Event("transfer.exported", map[string]any{"id": id, "rows": s.bank.TotalQuestions()})
	return nil
}

// Import parses the CSV and applies globals plus every matched answer in one
// transaction. Matched rows overwrite the stored answer wholesale, so no
// checkbox or override state survives from before the import.
func (s *transferService) Import(ctx context.Context, id string, r io.Reader) (*TransferSummary, error) {
	res, err := csvio.Import(r, s.bank)
	if err != nil {
		return nil, err
	}

	var summary *TransferSummary
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		assessments := repository.NewSQLiteAssessmentRepo(tx)
		answers := repository.NewSQLiteAnswerRepo(tx)

		a, err := assessments.GetByID(ctx, id)
		if err != nil {
			return err
		}

		applyGlobals(a, &res.Globals)
		a.UpdatedAt = time.Now().UTC()
		if err := assessments.Update(ctx, a); err != nil {
			return err
		}

		// Apply in bank order for deterministic write order.
		for _, key := range s.bank.Keys() {
			answer, ok := res.Answers[key]
			if !ok {
				continue
			}
			if err := answers.Upsert(ctx, id, answer); err != nil {
				return err
			}
		}

		summary = &TransferSummary{
			Schema:  res.Schema,
			Applied: res.Matched,
			Skipped: res.Skipped,
			Company: a.Company,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.obs.Event("transfer.imported", map[string]any{
		"id":      id,
		"schema":  string(summary.Schema),
		"applied": summary.Applied,
		"skipped": summary.Skipped,
	})
	return summary, nil
}

// applyGlobals copies the first-row fields onto the assessment. Only columns
// present in the file touch state; absent columns leave stored values alone.
func applyGlobals(a *domain.Assessment, g *csvio.Globals) {
	e := &a.Eligibility

	if g.Company != "" {
		a.Company = g.Company
	}
	if g.Employees != nil {
		e.Employees = *g.Employees
	}
	if g.TurnoverM != nil {
		e.TurnoverM = *g.TurnoverM
	}
	if g.BalanceM != nil {
		e.BalanceM = *g.BalanceM
	}
	if g.EligibilityConfirmed != nil {
		e.Confirmed = *g.EligibilityConfirmed
	}
	if g.IsSMESet {
		e.IsSME = g.IsSME
	}
	if g.AllowNonSME != nil {
		e.AllowNonSME = *g.AllowNonSME
	}
	if g.SectorConfirmed != nil {
		e.SectorConfirmed = *g.SectorConfirmed
	}
	if g.IsLogisticsSet {
		e.IsLogistics = g.IsLogistics
	}
	if g.AllowNonLogistics != nil {
		e.AllowNonLogistics = *g.AllowNonLogistics
	}
}
