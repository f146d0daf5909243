package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/teundejong/mlready/internal/db"
	"github.com/teundejong/mlready/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssessmentRepo creates a new SQLiteAssessmentRepo.
func NewSQLiteAssessmentRepo(db db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: db}
}

const assessmentColumns = `id, company, employees, turnover_m, balance_m,
	eligibility_confirmed, is_sme, allow_non_sme,
	sector_confirmed, is_logistics, allow_non_logistics,
	created_at, updated_at`

func (r *SQLiteAssessmentRepo) Create(ctx context.Context, a *domain.Assessment) error {
	query := `INSERT INTO assessments (` + assessmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	e := a.Eligibility
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Company,
		e.Employees,
		e.TurnoverM,
		e.BalanceM,
		boolToInt(e.Confirmed),
		optBoolToNull(e.IsSME),
		boolToInt(e.AllowNonSME),
		boolToInt(e.SectorConfirmed),
		optBoolToNull(e.IsLogistics),
		boolToInt(e.AllowNonLogistics),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) GetByID(ctx context.Context, id string) (*domain.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = ?`
	return r.scanAssessment(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteAssessmentRepo) GetLatest(ctx context.Context) (*domain.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments ORDER BY updated_at DESC LIMIT 1`
	return r.scanAssessment(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteAssessmentRepo) List(ctx context.Context) ([]*domain.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var out []*domain.Assessment
	for rows.Next() {
		a, err := r.scanAssessmentRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLiteAssessmentRepo) Update(ctx context.Context, a *domain.Assessment) error {
	a.UpdatedAt = time.Now().UTC()
	query := `UPDATE assessments SET
		company = ?, employees = ?, turnover_m = ?, balance_m = ?,
		eligibility_confirmed = ?, is_sme = ?, allow_non_sme = ?,
		sector_confirmed = ?, is_logistics = ?, allow_non_logistics = ?,
		updated_at = ?
		WHERE id = ?`
	e := a.Eligibility
	res, err := r.db.ExecContext(ctx, query,
		a.Company,
		e.Employees,
		e.TurnoverM,
		e.BalanceM,
		boolToInt(e.Confirmed),
		optBoolToNull(e.IsSME),
		boolToInt(e.AllowNonSME),
		boolToInt(e.SectorConfirmed),
		optBoolToNull(e.IsLogistics),
		boolToInt(e.AllowNonLogistics),
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating assessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating assessment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("assessment %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting assessment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) scanAssessment(row *sql.Row) (*domain.Assessment, error) {
	var a domain.Assessment
	var confirmed, allowNonSME, sectorConfirmed, allowNonLogistics int
	var isSME, isLogistics sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&a.ID, &a.Company,
		&a.Eligibility.Employees, &a.Eligibility.TurnoverM, &a.Eligibility.BalanceM,
		&confirmed, &isSME, &allowNonSME,
		&sectorConfirmed, &isLogistics, &allowNonLogistics,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}

	return r.populate(&a, confirmed, allowNonSME, sectorConfirmed, allowNonLogistics, isSME, isLogistics, createdAtStr, updatedAtStr)
}

func (r *SQLiteAssessmentRepo) scanAssessmentRows(rows *sql.Rows) (*domain.Assessment, error) {
	var a domain.Assessment
	var confirmed, allowNonSME, sectorConfirmed, allowNonLogistics int
	var isSME, isLogistics sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := rows.Scan(
		&a.ID, &a.Company,
		&a.Eligibility.Employees, &a.Eligibility.TurnoverM, &a.Eligibility.BalanceM,
		&confirmed, &isSME, &allowNonSME,
		&sectorConfirmed, &isLogistics, &allowNonLogistics,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}

	return r.populate(&a, confirmed, allowNonSME, sectorConfirmed, allowNonLogistics, isSME, isLogistics, createdAtStr, updatedAtStr)
}

func (r *SQLiteAssessmentRepo) populate(a *domain.Assessment, confirmed, allowNonSME, sectorConfirmed, allowNonLogistics int, isSME, isLogistics sql.NullInt64, createdAtStr, updatedAtStr string) (*domain.Assessment, error) {
	a.Eligibility.Confirmed = confirmed != 0
	a.Eligibility.AllowNonSME = allowNonSME != 0
	a.Eligibility.SectorConfirmed = sectorConfirmed != 0
	a.Eligibility.AllowNonLogistics = allowNonLogistics != 0
	a.Eligibility.IsSME = nullToOptBool(isSME)
	a.Eligibility.IsLogistics = nullToOptBool(isLogistics)

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	a.CreatedAt = createdAt
	a.UpdatedAt = updatedAt
	return a, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func optBoolToNull(b *bool) any {
	if b == nil {
		return nil
	}
	return boolToInt(*b)
}

func nullToOptBool(n sql.NullInt64) *bool {
	if !n.Valid {
		return nil
	}
	v := n.Int64 != 0
	return &v
}
