package service

import (
	"context"
	"time"

	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/repository"
)

type eligibilityService struct {
	assessments repository.AssessmentRepo
	obs         Observer
}

// NewEligibilityService creates an EligibilityService backed by the given repo.
func NewEligibilityService(assessments repository.AssessmentRepo, obs Observer) EligibilityService {
	return &eligibilityService{assessments: assessments, obs: obs}
}

func (s *eligibilityService) SetInputs(ctx context.Context, id string, employees int, turnoverM, balanceM float64) (*domain.Eligibility, error) {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Eligibility.SetInputs(employees, turnoverM, balanceM)
	a.UpdatedAt = time.Now().UTC()
	if err := s.assessments.Update(ctx, a); err != nil {
		return nil, err
	}
	e := a.Eligibility
	return &e, nil
}

func (s *eligibilityService) Check(ctx context.Context, id string) (bool, error) {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	sme := a.Eligibility.Check()
	a.UpdatedAt = time.Now().UTC()
	if err := s.assessments.Update(ctx, a); err != nil {
		return false, err
	}
	s.obs.Event("eligibility.checked", map[string]any{"id": id, "sme": sme})
	return sme, nil
}

func (s *eligibilityService) SetSector(ctx context.Context, id string, isLogistics *bool) error {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Eligibility.SetSector(isLogistics)
	a.UpdatedAt = time.Now().UTC()
	return s.assessments.Update(ctx, a)
}

func (s *eligibilityService) Acknowledge(ctx context.Context, id string, nonSME, nonLogistics bool) error {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Eligibility.AllowNonSME = nonSME
	a.Eligibility.AllowNonLogistics = nonLogistics
	a.UpdatedAt = time.Now().UTC()
	return s.assessments.Update(ctx, a)
}

func (s *eligibilityService) Gate(ctx context.Context, id string) (*domain.Eligibility, error) {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e := a.Eligibility
	return &e, nil
}
