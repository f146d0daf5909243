package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teundejong/mlready/internal/domain"
	"github.com/teundejong/mlready/internal/testutil"
)

func seedAssessment(t *testing.T, repo *SQLiteAssessmentRepo) *domain.Assessment {
	t.Helper()
	a := testutil.NewTestAssessment("Answer Co", testutil.WithGateOpen())
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestAnswerRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	assessments := NewSQLiteAssessmentRepo(db)
	answers := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	a := seedAssessment(t, assessments)
	key := domain.ConceptKey{Dimension: "1. Data", Concept: "Quality"}

	answer := &domain.Answer{
		Key:       key,
		Checklist: domain.Checklist{A: true, B: true, RealTime: true},
	}
	require.NoError(t, answers.Upsert(ctx, a.ID, answer))
	assert.False(t, answer.UpdatedAt.IsZero(), "upsert stamps the time")

	fetched, err := answers.Get(ctx, a.ID, key)
	require.NoError(t, err)
	assert.Equal(t, answer.Checklist, fetched.Checklist)
	assert.False(t, fetched.OverrideEnabled)

	level, ok := fetched.FinalLevel()
	require.True(t, ok)
	assert.Equal(t, domain.Level(3), level)
}

func TestAnswerRepo_UpsertReplacesWholeRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	assessments := NewSQLiteAssessmentRepo(db)
	answers := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	a := seedAssessment(t, assessments)
	key := domain.ConceptKey{Dimension: "1. Data", Concept: "Quality"}

	first := &domain.Answer{Key: key, Checklist: domain.Checklist{A: true, B: true, C: true}}
	first.EnableOverride(5)
	require.NoError(t, answers.Upsert(ctx, a.ID, first))

	// The second write carries no override; none may survive from the first.
	second := &domain.Answer{Key: key, Checklist: domain.Checklist{None: true}}
	require.NoError(t, answers.Upsert(ctx, a.ID, second))

	fetched, err := answers.Get(ctx, a.ID, key)
	require.NoError(t, err)
	assert.Equal(t, domain.Checklist{None: true}, fetched.Checklist)
	assert.False(t, fetched.OverrideEnabled)
	assert.Equal(t, domain.Level(0), fetched.OverrideLevel)
}

func TestAnswerRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	assessments := NewSQLiteAssessmentRepo(db)
	answers := NewSQLiteAnswerRepo(db)

	a := seedAssessment(t, assessments)
	_, err := answers.Get(context.Background(), a.ID, domain.ConceptKey{Dimension: "x", Concept: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnswerRepo_ListByAssessment(t *testing.T) {
	db := testutil.NewTestDB(t)
	assessments := NewSQLiteAssessmentRepo(db)
	answers := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	a := seedAssessment(t, assessments)
	other := seedAssessment(t, assessments)

	k1 := domain.ConceptKey{Dimension: "1. Data", Concept: "Quality"}
	k2 := domain.ConceptKey{Dimension: "2. Process", Concept: "Monitoring"}
	require.NoError(t, answers.Upsert(ctx, a.ID, testutil.NewTestAnswer(k1, 2)))
	require.NoError(t, answers.Upsert(ctx, a.ID, testutil.NewTestAnswer(k2, 4)))
	require.NoError(t, answers.Upsert(ctx, other.ID, testutil.NewTestAnswer(k1, 5)))

	rs, err := answers.ListByAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, rs, 2)

	levels := rs.Levels()
	assert.Equal(t, domain.Level(2), levels[k1])
	assert.Equal(t, domain.Level(4), levels[k2])
}

func TestAnswerRepo_DeleteByAssessment(t *testing.T) {
	db := testutil.NewTestDB(t)
	assessments := NewSQLiteAssessmentRepo(db)
	answers := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	a := seedAssessment(t, assessments)
	k := domain.ConceptKey{Dimension: "1. Data", Concept: "Quality"}
	require.NoError(t, answers.Upsert(ctx, a.ID, testutil.NewTestAnswer(k, 3)))

	require.NoError(t, answers.DeleteByAssessment(ctx, a.ID))
	rs, err := answers.ListByAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, rs)
}

// Deleting the assessment cascades to its answers.
func TestAnswerRepo_CascadeOnAssessmentDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	assessments := NewSQLiteAssessmentRepo(db)
	answers := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	a := seedAssessment(t, assessments)
	k := domain.ConceptKey{Dimension: "1. Data", Concept: "Quality"}
	require.NoError(t, answers.Upsert(ctx, a.ID, testutil.NewTestAnswer(k, 3)))

	require.NoError(t, assessments.Delete(ctx, a.ID))

	rs, err := answers.ListByAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, rs)
}
