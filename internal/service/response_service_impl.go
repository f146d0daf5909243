package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/repository"
)

type responseService struct {
	assessments repository.AssessmentRepo
	answers     repository.AnswerRepo
	bank        *bank.Bank
	obs         Observer
}

// NewResponseService creates a ResponseService backed by the given repos and bank.
func NewResponseService(assessments repository.AssessmentRepo, answers repository.AnswerRepo, b *bank.Bank, obs Observer) ResponseService {
	return &responseService{assessments: assessments, answers: answers, bank: b, obs: obs}
}

// gated loads the assessment and refuses access while the eligibility gates
// block the questionnaire.
func (s *responseService) gated(ctx context.Context, id string) (*domain.Assessment, error) {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.Eligibility.GateOpen() {
		return nil, &Error{
			Code:    ErrGateClosed,
			Message: "eligibility gate is closed; run the eligibility check first or acknowledge continuing anyway",
		}
	}
	return a, nil
}

func (s *responseService) validKey(key domain.ConceptKey) error {
	if !s.bank.Contains(key) {
		return &Error{
			Code:    ErrUnknownConcept,
			Message: fmt.Sprintf("unknown question %s", key),
		}
	}
	return nil
}

// loadOrNew returns the stored answer for key, or a fresh one if none exists.
func (s *responseService) loadOrNew(ctx context.Context, id string, key domain.ConceptKey) (*domain.Answer, error) {
	a, err := s.answers.Get(ctx, id, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.Answer{Key: key}, nil
		}
		return nil, err
	}
	return a, nil
}

func (s *responseService) save(ctx context.Context, assessment *domain.Assessment, a *domain.Answer) error {
	a.UpdatedAt = time.Now().UTC()
	if err := s.answers.Upsert(ctx, assessment.ID, a); err != nil {
		return err
	}
	assessment.UpdatedAt = a.UpdatedAt
	return s.assessments.Update(ctx, assessment)
}

func (s *responseService) SetChecklist(ctx context.Context, id string, key domain.ConceptKey, cl domain.Checklist) (*domain.Answer, error) {
	assessment, err := s.gated(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validKey(key); err != nil {
		return nil, err
	}

	a, err := s.loadOrNew(ctx, id, key)
	if err != nil {
		return nil, err
	}
	a.Checklist = cl
	if err := s.save(ctx, assessment, a); err != nil {
		return nil, err
	}
	s.obs.Event("answer.checklist", map[string]any{"id": id, "key": key.String()})
	return a, nil
}

func (s *responseService) Override(ctx context.Context, id string, key domain.ConceptKey, level domain.Level) (*domain.Answer, error) {
	assessment, err := s.gated(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validKey(key); err != nil {
		return nil, err
	}
	if !level.Valid() {
		return nil, &Error{
			Code:    ErrInvalidLevel,
			Message: fmt.Sprintf("level %d out of range %d-%d", level, domain.LevelMin, domain.LevelMax),
		}
	}

	a, err := s.loadOrNew(ctx, id, key)
	if err != nil {
		return nil, err
	}
	a.EnableOverride(level)
	if err := s.save(ctx, assessment, a); err != nil {
		return nil, err
	}
	s.obs.Event("answer.override", map[string]any{"id": id, "key": key.String(), "level": int(level)})
	return a, nil
}

func (s *responseService) ClearOverride(ctx context.Context, id string, key domain.ConceptKey) (*domain.Answer, error) {
	assessment, err := s.gated(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validKey(key); err != nil {
		return nil, err
	}

	a, err := s.answers.Get(ctx, id, key)
	if err != nil {
		return nil, err
	}
	a.DisableOverride()
	if err := s.save(ctx, assessment, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *responseService) Get(ctx context.Context, id string, key domain.ConceptKey) (*domain.Answer, error) {
	if err := s.validKey(key); err != nil {
		return nil, err
	}
	return s.answers.Get(ctx, id, key)
}

func (s *responseService) Responses(ctx context.Context, id string) (domain.ResponseSet, error) {
	if _, err := s.assessments.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.answers.ListByAssessment(ctx, id)
}

func (s *responseService) Progress(ctx context.Context, id string) (*Progress, error) {
	rs, err := s.Responses(ctx, id)
	if err != nil {
		return nil, err
	}
	missing := s.bank.Missing(rs)
	total := s.bank.TotalQuestions()
	return &Progress{
		Answered: total - len(missing),
		Total:    total,
		Missing:  missing,
	}, nil
}
