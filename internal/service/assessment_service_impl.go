package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/repository"
)

type assessmentService struct {
	assessments repository.AssessmentRepo
	answers     repository.AnswerRepo
	obs         Observer
}

// NewAssessmentService creates an AssessmentService backed by the given repos.
func NewAssessmentService(assessments repository.AssessmentRepo, answers repository.AnswerRepo, obs Observer) AssessmentService {
	return &assessmentService{assessments: assessments, answers: answers, obs: obs}
}

func (s *assessmentService) Create(ctx context.Context, company string) (*domain.Assessment, error) {
	now := time.Now().UTC()
	a := &domain.Assessment{
		ID:        uuid.NewString(),
		Company:   company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.assessments.Create(ctx, a); err != nil {
		return nil, err
	}
	s.obs.Event("assessment.created", map[string]any{"id": a.ID, "company": company})
	return a, nil
}

func (s *assessmentService) Get(ctx context.Context, id string) (*domain.Assessment, error) {
	return s.assessments.GetByID(ctx, id)
}

func (s *assessmentService) Latest(ctx context.Context) (*domain.Assessment, error) {
	return s.assessments.GetLatest(ctx)
}

func (s *assessmentService) List(ctx context.Context) ([]*domain.Assessment, error) {
	return s.assessments.List(ctx)
}

func (s *assessmentService) SetCompany(ctx context.Context, id, company string) error {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Company = company
	a.UpdatedAt = time.Now().UTC()
	return s.assessments.Update(ctx, a)
}

func (s *assessmentService) Reset(ctx context.Context, id string) error {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.answers.DeleteByAssessment(ctx, id); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	if err := s.assessments.Update(ctx, a); err != nil {
		return err
	}
	s.obs.Event("assessment.reset", map[string]any{"id": id})
	return nil
}

func (s *assessmentService) Delete(ctx context.Context, id string) error {
	if err := s.assessments.Delete(ctx, id); err != nil {
		return err
	}
	s.obs.Event("assessment.deleted", map[string]any{"id": id})
	return nil
}
