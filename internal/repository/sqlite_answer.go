package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/teundejong/mlready/internal/db"
	"github.com/teundejong/mlready/internal/domain"
)

// SQLiteAnswerRepo implements AnswerRepo using a SQLite database.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

// NewSQLiteAnswerRepo creates a new SQLiteAnswerRepo.
func NewSQLiteAnswerRepo(db db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: db}
}

const answerColumns = `dimension, concept, check_a, check_b, check_c, check_rt, check_none,
	override_enabled, override_level, updated_at`

// Upsert replaces the full answer state for its (dimension, concept) pair.
// A whole-row replace, so no stale checkbox or override artifacts survive.
func (r *SQLiteAnswerRepo) Upsert(ctx context.Context, assessmentID string, a *domain.Answer) error {
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = time.Now().UTC()
	}
	query := `INSERT INTO answers (assessment_id, ` + answerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (assessment_id, dimension, concept) DO UPDATE SET
			check_a = excluded.check_a,
			check_b = excluded.check_b,
			check_c = excluded.check_c,
			check_rt = excluded.check_rt,
			check_none = excluded.check_none,
			override_enabled = excluded.override_enabled,
			override_level = excluded.override_level,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		assessmentID,
		a.Key.Dimension,
		a.Key.Concept,
		boolToInt(a.Checklist.A),
		boolToInt(a.Checklist.B),
		boolToInt(a.Checklist.C),
		boolToInt(a.Checklist.RealTime),
		boolToInt(a.Checklist.None),
		boolToInt(a.OverrideEnabled),
		levelToNull(a.OverrideLevel),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting answer %s: %w", a.Key, err)
	}
	return nil
}

func (r *SQLiteAnswerRepo) Get(ctx context.Context, assessmentID string, key domain.ConceptKey) (*domain.Answer, error) {
	query := `SELECT ` + answerColumns + ` FROM answers
		WHERE assessment_id = ? AND dimension = ? AND concept = ?`
	row := r.db.QueryRowContext(ctx, query, assessmentID, key.Dimension, key.Concept)

	a, err := scanAnswer(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("answer %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning answer %s: %w", key, err)
	}
	return a, nil
}

func (r *SQLiteAnswerRepo) ListByAssessment(ctx context.Context, assessmentID string) (domain.ResponseSet, error) {
	query := `SELECT ` + answerColumns + ` FROM answers WHERE assessment_id = ?`
	rows, err := r.db.QueryContext(ctx, query, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	rs := make(domain.ResponseSet)
	for rows.Next() {
		a, err := scanAnswer(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning answer: %w", err)
		}
		rs.Set(a)
	}
	return rs, rows.Err()
}

func (r *SQLiteAnswerRepo) Delete(ctx context.Context, assessmentID string, key domain.ConceptKey) error {
	query := `DELETE FROM answers WHERE assessment_id = ? AND dimension = ? AND concept = ?`
	if _, err := r.db.ExecContext(ctx, query, assessmentID, key.Dimension, key.Concept); err != nil {
		return fmt.Errorf("deleting answer %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteAnswerRepo) DeleteByAssessment(ctx context.Context, assessmentID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE assessment_id = ?`, assessmentID); err != nil {
		return fmt.Errorf("clearing answers: %w", err)
	}
	return nil
}

func scanAnswer(scan func(dest ...any) error) (*domain.Answer, error) {
	var a domain.Answer
	var checkA, checkB, checkC, checkRT, checkNone, overrideEnabled int
	var overrideLevel sql.NullInt64
	var updatedAtStr string

	err := scan(
		&a.Key.Dimension, &a.Key.Concept,
		&checkA, &checkB, &checkC, &checkRT, &checkNone,
		&overrideEnabled, &overrideLevel, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	a.Checklist = domain.Checklist{
		A:        checkA != 0,
		B:        checkB != 0,
		C:        checkC != 0,
		RealTime: checkRT != 0,
		None:     checkNone != 0,
	}
	a.OverrideEnabled = overrideEnabled != 0
	if overrideLevel.Valid {
		a.OverrideLevel = domain.Level(overrideLevel.Int64)
	}

	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	a.UpdatedAt = updatedAt
	return &a, nil
}

func levelToNull(l domain.Level) any {
	if !l.Valid() {
		return nil
	}
	return int(l)
}
