package repository

import (
	"context"
	"errors"

	"github.com/teundejong/mlready/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// AssessmentRepo persists assessment sessions.
type AssessmentRepo interface {
	Create(ctx context.Context, a *domain.Assessment) error
	GetByID(ctx context.Context, id string) (*domain.Assessment, error)
	GetLatest(ctx context.Context) (*domain.Assessment, error)
	List(ctx context.Context) ([]*domain.Assessment, error)
	Update(ctx context.Context, a *domain.Assessment) error
	Delete(ctx context.Context, id string) error
}

// AnswerRepo persists per-concept answers for an assessment.
type AnswerRepo interface {
	Upsert(ctx context.Context, assessmentID string, a *domain.Answer) error
	Get(ctx context.Context, assessmentID string, key domain.ConceptKey) (*domain.Answer, error)
	ListByAssessment(ctx context.Context, assessmentID string) (domain.ResponseSet, error)
	Delete(ctx context.Context, assessmentID string, key domain.ConceptKey) error
	DeleteByAssessment(ctx context.Context, assessmentID string) error
}
