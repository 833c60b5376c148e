package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/discipline"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/database"
)

type caseRepositoryImpl struct {
	db *database.DB
}

func NewCaseRepository(db *database.DB) discipline.CaseRepository {
	return &caseRepositoryImpl{db: db}
}

const caseColumns = `id, employee_id, seat, shift_date, amount, reason, status, created_at, updated_at, closed_at`

func scanCase(row pgx.Row) (discipline.Case, error) {
	var c discipline.Case
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.Seat, &c.ShiftDate, &c.Amount,
		&c.Reason, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.ClosedAt,
	)
	return c, err
}

// Create implements discipline.CaseRepository.
func (r *caseRepositoryImpl) Create(ctx context.Context, c discipline.Case) (discipline.Case, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO disciplinary_cases (employee_id, seat, shift_date, amount, reason, status, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + caseColumns

	created, err := scanCase(q.QueryRow(ctx, query,
		c.EmployeeID, c.Seat, c.ShiftDate, c.Amount, c.Reason, c.Status, c.ClosedAt,
	))
	if err != nil {
		return discipline.Case{}, fmt.Errorf("failed to create disciplinary case: %w", err)
	}
	return created, nil
}

// GetByID implements discipline.CaseRepository.
func (r *caseRepositoryImpl) GetByID(ctx context.Context, id string) (discipline.Case, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + caseColumns + ` FROM disciplinary_cases WHERE id = $1`

	found, err := scanCase(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return discipline.Case{}, discipline.ErrCaseNotFound
		}
		return discipline.Case{}, fmt.Errorf("failed to get disciplinary case: %w", err)
	}
	return found, nil
}

// ListByShiftDate implements discipline.CaseRepository.
func (r *caseRepositoryImpl) ListByShiftDate(ctx context.Context, date time.Time) ([]discipline.Case, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + caseColumns + ` FROM disciplinary_cases WHERE shift_date = $1 ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list disciplinary cases: %w", err)
	}
	defer rows.Close()

	return collectCases(rows)
}

// ListByEmployee implements discipline.CaseRepository.
func (r *caseRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]discipline.Case, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + caseColumns + ` FROM disciplinary_cases WHERE employee_id = $1 ORDER BY shift_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list disciplinary cases: %w", err)
	}
	defer rows.Close()

	return collectCases(rows)
}

func collectCases(rows pgx.Rows) ([]discipline.Case, error) {
	var cases []discipline.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan disciplinary case: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

// Update implements discipline.CaseRepository.
func (r *caseRepositoryImpl) Update(ctx context.Context, c discipline.Case) (discipline.Case, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE disciplinary_cases
		SET amount = $1, reason = $2, status = $3, closed_at = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + caseColumns

	updated, err := scanCase(q.QueryRow(ctx, query,
		c.Amount, c.Reason, c.Status, c.ClosedAt, c.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return discipline.Case{}, discipline.ErrCaseNotFound
		}
		return discipline.Case{}, fmt.Errorf("failed to update disciplinary case: %w", err)
	}
	return updated, nil
}

// Delete implements discipline.CaseRepository.
func (r *caseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM disciplinary_cases WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return discipline.ErrCaseNotFound
		}
		return fmt.Errorf("failed to delete disciplinary case: %w", err)
	}
	return nil
}
