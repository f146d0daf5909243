package service

import (
	"context"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/recommend"
	"github.com/teundejong/mlready/internal/repository"
	"github.com/teundejong/mlready/internal/scoring"
)

type evaluationService struct {
	assessments repository.AssessmentRepo
	answers     repository.AnswerRepo
	bank        *bank.Bank
	obs         Observer
}

// NewEvaluationService creates an EvaluationService backed by the given repos and bank.
func NewEvaluationService(assessments repository.AssessmentRepo, answers repository.AnswerRepo, b *bank.Bank, obs Observer) EvaluationService {
	return &evaluationService{assessments: assessments, answers: answers, bank: b, obs: obs}
}

func (s *evaluationService) Evaluate(ctx context.Context, id string) (*scoring.Evaluation, error) {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.Eligibility.GateOpen() {
		return nil, &Error{
			Code:    ErrGateClosed,
			Message: "eligibility gate is closed; results are available after the gate is passed",
		}
	}

	rs, err := s.answers.ListByAssessment(ctx, id)
	if err != nil {
		return nil, err
	}

	ev, err := scoring.Evaluate(s.bank, rs)
	if err != nil {
		return nil, err
	}
	s.obs.Event("evaluation.computed", map[string]any{
		"id":      id,
		"nmrs":    ev.NMRS,
		"overall": int(ev.OverallLevel),
		"mlready": ev.MLReady,
	})
	return ev, nil
}

type adviceService struct {
	evals EvaluationService
	bank  *bank.Bank
}

// NewAdviceService creates an AdviceService layered on evaluation.
func NewAdviceService(evals EvaluationService, b *bank.Bank) AdviceService {
	return &adviceService{evals: evals, bank: b}
}

func (s *adviceService) Advise(ctx context.Context, id string) ([]recommend.DimensionAdvice, error) {
	ev, err := s.evals.Evaluate(ctx, id)
	if err != nil {
		return nil, err
	}
	return recommend.Advise(s.bank, ev.ConceptLevels, ev.DimensionLevels), nil
}
