package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teundejong/mlready/internal/bank"
	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/repository"
	"github.com/teundejong/mlready/internal/testutil"
)

type serviceFixture struct {
	db          *sql.DB
	bank        *bank.Bank
	assessments *repository.SQLiteAssessmentRepo
	answers     *repository.SQLiteAnswerRepo
	responses   ResponseService
	evaluations EvaluationService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	b := testutil.NewTestBank()
	assessments := repository.NewSQLiteAssessmentRepo(database)
	answers := repository.NewSQLiteAnswerRepo(database)

	return &serviceFixture{
		db:          database,
		bank:        b,
		assessments: assessments,
		answers:     answers,
		responses:   NewResponseService(assessments, answers, b, NoopObserver{}),
		evaluations: NewEvaluationService(assessments, answers, b, NoopObserver{}),
	}
}

func (f *serviceFixture) seed(t *testing.T, opts ...testutil.AssessmentOption) *domain.Assessment {
	t.Helper()
	a := testutil.NewTestAssessment("Fixture Co", opts...)
	require.NoError(t, f.assessments.Create(context.Background(), a))
	return a
}

func TestResponseService_GateClosedBlocksAnswers(t *testing.T) {
	f := newServiceFixture(t)
	a := f.seed(t) // gates closed
	key := f.bank.Keys()[0]

	_, err := f.responses.SetChecklist(context.Background(), a.ID, key, domain.Checklist{A: true})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrGateClosed, svcErr.Code)

	_, err = f.responses.Override(context.Background(), a.ID, key, 3)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrGateClosed, svcErr.Code)
}

func TestResponseService_SetChecklist(t *testing.T) {
	f := newServiceFixture(t)
	a := f.seed(t, testutil.WithGateOpen())
	key := f.bank.Keys()[0]
	ctx := context.Background()

	answer, err := f.responses.SetChecklist(ctx, a.ID, key, domain.Checklist{A: true, B: true})
	require.NoError(t, err)

	level, ok := answer.FinalLevel()
	require.True(t, ok)
	assert.Equal(t, domain.Level(3), level)

	// Persisted, and the assessment was touched.
	stored, err := f.answers.Get(ctx, a.ID, key)
	require.NoError(t, err)
	assert.Equal(t, domain.Checklist{A: true, B: true}, stored.Checklist)

	touched, err := f.assessments.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, touched.UpdatedAt.Before(a.UpdatedAt))
}

func TestResponseService_UnknownConcept(t *testing.T) {
	f := newServiceFixture(t)
	a := f.seed(t, testutil.WithGateOpen())

	_, err := f.responses.SetChecklist(context.Background(), a.ID, domain.ConceptKey{Dimension: "x", Concept: "y"}, domain.Checklist{A: true})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrUnknownConcept, svcErr.Code)
}

func TestResponseService_OverrideLifecycle(t *testing.T) {
	f := newServiceFixture(t)
	a := f.seed(t, testutil.WithGateOpen())
	key := f.bank.Keys()[0]
	ctx := context.Background()

	_, err := f.responses.SetChecklist(ctx, a.ID, key, domain.Checklist{A: true})
	require.NoError(t, err)

	answer, err := f.responses.Override(ctx, a.ID, key, 5)
	require.NoError(t, err)
	level, _ := answer.FinalLevel()
	assert.Equal(t, domain.Level(5), level)

	answer, err = f.responses.ClearOverride(ctx, a.ID, key)
	require.NoError(t, err)
	level, _ = answer.FinalLevel()
	assert.Equal(t, domain.Level(2), level, "reverts to the checklist derivation")

	_, err = f.responses.Override(ctx, a.ID, key, 9)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrInvalidLevel, svcErr.Code)
}

func TestResponseService_Progress(t *testing.T) {
	f := newServiceFixture(t)
	a := f.seed(t, testutil.WithGateOpen())
	ctx := context.Background()
	keys := f.bank.Keys()

	progress, err := f.responses.Progress(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Answered)
	assert.Equal(t, f.bank.TotalQuestions(), progress.Total)

	_, err = f.responses.SetChecklist(ctx, a.ID, keys[0], domain.Checklist{A: true})
	require.NoError(t, err)
	// A contradictory answer is stored but still counts as missing.
	_, err = f.responses.SetChecklist(ctx, a.ID, keys[1], domain.Checklist{A: true, None: true})
	require.NoError(t, err)

	progress, err = f.responses.Progress(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Answered)
	assert.Contains(t, progress.Missing, keys[1])
	assert.NotContains(t, progress.Missing, keys[0])
}

func TestEvaluationService_GateAndCompleteness(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	closed := f.seed(t)
	_, err := f.evaluations.Evaluate(ctx, closed.ID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrGateClosed, svcErr.Code)

	open := f.seed(t, testutil.WithGateOpen())
	_, err = f.evaluations.Evaluate(ctx, open.ID)
	assert.Error(t, err, "incomplete assessment must refuse evaluation")

	for _, key := range f.bank.Keys() {
		_, err = f.responses.SetChecklist(ctx, open.ID, key, domain.RehydrateChecklist(4))
		require.NoError(t, err)
	}

	ev, err := f.evaluations.Evaluate(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Level(4), ev.OverallLevel)
	assert.True(t, ev.MLReady)
}

func TestAdviceService_DelegatesToEvaluation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	a := f.seed(t, testutil.WithGateOpen())

	for _, key := range f.bank.Keys() {
		_, err := f.responses.SetChecklist(ctx, a.ID, key, domain.RehydrateChecklist(2))
		require.NoError(t, err)
	}

	advice, err := NewAdviceService(f.evaluations, f.bank).Advise(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, advice, len(f.bank.Dimensions))
	assert.False(t, advice[0].Stable)
	assert.NotEmpty(t, advice[0].Plans)
}
