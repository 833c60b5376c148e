package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, shift_date, admin_id, cashier_id,
		bar_revenue, game_zone_gross, game_zone_error, vr_revenue, hookah_revenue,
		hall_cleaned, tech_report_filed, publication_link, publication_verified,
		admin_penalty, cashier_penalty, shortage, shortage_paid,
		status, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.Date, &s.AdminID, &s.CashierID,
		&s.BarRevenue, &s.GameZoneGross, &s.GameZoneError, &s.VRRevenue, &s.HookahRevenue,
		&s.HallCleaned, &s.TechReportFiled, &s.PublicationLink, &s.PublicationVerified,
		&s.AdminPenalty, &s.CashierPenalty, &s.Shortage, &s.ShortagePaid,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			shift_date, admin_id, cashier_id,
			bar_revenue, game_zone_gross, game_zone_error, vr_revenue, hookah_revenue,
			hall_cleaned, tech_report_filed, publication_link, publication_verified,
			admin_penalty, cashier_penalty, shortage, shortage_paid, status
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16, $17
		)
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		s.Date, s.AdminID, s.CashierID,
		s.BarRevenue, s.GameZoneGross, s.GameZoneError, s.VRRevenue, s.HookahRevenue,
		s.HallCleaned, s.TechReportFiled, s.PublicationLink, s.PublicationVerified,
		s.AdminPenalty, s.CashierPenalty, s.Shortage, s.ShortagePaid, s.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Shift{}, shift.ErrShiftDateTaken
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// GetByDate implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_date = $1`

	found, err := scanShift(q.QueryRow(ctx, query, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return found, nil
}

// ListByMonth implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByMonth(ctx context.Context, month, year int) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE EXTRACT(MONTH FROM shift_date) = $1 AND EXTRACT(YEAR FROM shift_date) = $2
		ORDER BY shift_date ASC
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListByMonthAndStatus implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByMonthAndStatus(ctx context.Context, month, year int, status shift.Status) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE EXTRACT(MONTH FROM shift_date) = $1 AND EXTRACT(YEAR FROM shift_date) = $2 AND status = $3
		ORDER BY shift_date ASC
	`

	rows, err := q.Query(ctx, query, month, year, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET admin_id = $1, cashier_id = $2,
			bar_revenue = $3, game_zone_gross = $4, game_zone_error = $5,
			vr_revenue = $6, hookah_revenue = $7,
			hall_cleaned = $8, tech_report_filed = $9,
			publication_link = $10, publication_verified = $11,
			shortage = $12, shortage_paid = $13,
			updated_at = NOW()
		WHERE id = $14
		RETURNING ` + shiftColumns

	updated, err := scanShift(q.QueryRow(ctx, query,
		s.AdminID, s.CashierID,
		s.BarRevenue, s.GameZoneGross, s.GameZoneError,
		s.VRRevenue, s.HookahRevenue,
		s.HallCleaned, s.TechReportFiled,
		s.PublicationLink, s.PublicationVerified,
		s.Shortage, s.ShortagePaid,
		s.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return updated, nil
}

// UpdateStatus implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) UpdateStatus(ctx context.Context, date time.Time, status shift.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = $1, updated_at = NOW()
		WHERE shift_date = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, date).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift status: %w", err)
	}
	return nil
}

// UpdatePenalties implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) UpdatePenalties(ctx context.Context, date time.Time, adminPenalty, cashierPenalty decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET admin_penalty = $1, cashier_penalty = $2, updated_at = NOW()
		WHERE shift_date = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, adminPenalty, cashierPenalty, date).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift penalties: %w", err)
	}
	return nil
}
