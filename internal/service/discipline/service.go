package discipline

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/discipline"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/database"
	"github.com/cyberclub/staffhub-backend-go/internal/repository/postgresql"
)

type CaseServiceImpl struct {
	db           *database.DB
	caseRepo     discipline.CaseRepository
	employeeRepo employee.EmployeeRepository
	shiftService shift.ShiftService
}

func NewCaseService(db *database.DB, caseRepo discipline.CaseRepository, employeeRepo employee.EmployeeRepository, shiftService shift.ShiftService) discipline.CaseService {
	return &CaseServiceImpl{
		db:           db,
		caseRepo:     caseRepo,
		employeeRepo: employeeRepo,
		shiftService: shiftService,
	}
}

// Create implements discipline.CaseService. New cases start open and do
// not affect penalties until closed.
func (s *CaseServiceImpl) Create(ctx context.Context, req discipline.CreateCaseRequest) (discipline.CaseResponse, error) {
	if err := req.Validate(); err != nil {
		return discipline.CaseResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return discipline.CaseResponse{}, err
	}

	shiftDate, _ := time.Parse("2006-01-02", req.ShiftDate)

	created, err := s.caseRepo.Create(ctx, discipline.Case{
		EmployeeID: req.EmployeeID,
		Seat:       shift.Position(req.Seat),
		ShiftDate:  shiftDate,
		Amount:     req.Amount,
		Reason:     req.Reason,
		Status:     discipline.StatusOpen,
	})
	if err != nil {
		return discipline.CaseResponse{}, err
	}
	return toResponse(created), nil
}

// Get implements discipline.CaseService.
func (s *CaseServiceImpl) Get(ctx context.Context, id string) (discipline.CaseResponse, error) {
	found, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return discipline.CaseResponse{}, err
	}
	return toResponse(found), nil
}

// ListByEmployee implements discipline.CaseService.
func (s *CaseServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]discipline.CaseResponse, error) {
	cases, err := s.caseRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]discipline.CaseResponse, 0, len(cases))
	for _, c := range cases {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

// Update implements discipline.CaseService. Amount changes on a closed
// case re-derive the owning shift's penalty totals in the same
// transaction.
func (s *CaseServiceImpl) Update(ctx context.Context, req discipline.UpdateCaseRequest) (discipline.CaseResponse, error) {
	if err := req.Validate(); err != nil {
		return discipline.CaseResponse{}, err
	}

	current, err := s.caseRepo.GetByID(ctx, req.ID)
	if err != nil {
		return discipline.CaseResponse{}, err
	}

	amountChanged := false
	if req.Amount != nil && !req.Amount.Equal(current.Amount) {
		current.Amount = *req.Amount
		amountChanged = true
	}
	if req.Reason != nil && *req.Reason != "" {
		current.Reason = *req.Reason
	}

	var updated discipline.Case
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.caseRepo.Update(txCtx, current)
		if err != nil {
			return err
		}
		if amountChanged && current.Status == discipline.StatusClosed {
			return s.shiftService.RecomputePenalties(txCtx, current.ShiftDate)
		}
		return nil
	})
	if err != nil {
		return discipline.CaseResponse{}, err
	}
	return toResponse(updated), nil
}

// Close implements discipline.CaseService.
func (s *CaseServiceImpl) Close(ctx context.Context, id string) (discipline.CaseResponse, error) {
	return s.setStatus(ctx, id, discipline.StatusClosed)
}

// Reopen implements discipline.CaseService.
func (s *CaseServiceImpl) Reopen(ctx context.Context, id string) (discipline.CaseResponse, error) {
	return s.setStatus(ctx, id, discipline.StatusOpen)
}

func (s *CaseServiceImpl) setStatus(ctx context.Context, id string, to discipline.Status) (discipline.CaseResponse, error) {
	current, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return discipline.CaseResponse{}, err
	}

	if to == discipline.StatusClosed && current.Status == discipline.StatusClosed {
		return discipline.CaseResponse{}, discipline.ErrCaseAlreadyClosed
	}
	if to == discipline.StatusOpen && current.Status != discipline.StatusClosed {
		return discipline.CaseResponse{}, discipline.ErrCaseNotClosed
	}

	current.Status = to
	if to == discipline.StatusClosed {
		now := time.Now()
		current.ClosedAt = &now
	} else {
		current.ClosedAt = nil
	}

	var updated discipline.Case
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.caseRepo.Update(txCtx, current)
		if err != nil {
			return err
		}
		return s.shiftService.RecomputePenalties(txCtx, current.ShiftDate)
	})
	if err != nil {
		return discipline.CaseResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete implements discipline.CaseService. Deleting a closed case
// releases its amount from the shift's penalty totals.
func (s *CaseServiceImpl) Delete(ctx context.Context, id string) error {
	current, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.caseRepo.Delete(txCtx, id); err != nil {
			return err
		}
		if current.Status == discipline.StatusClosed {
			return s.shiftService.RecomputePenalties(txCtx, current.ShiftDate)
		}
		return nil
	})
}

func toResponse(c discipline.Case) discipline.CaseResponse {
	var closedAt *string
	if c.ClosedAt != nil {
		formatted := c.ClosedAt.Format(time.RFC3339)
		closedAt = &formatted
	}

	return discipline.CaseResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		Seat:       string(c.Seat),
		ShiftDate:  c.ShiftDate.Format("2006-01-02"),
		Amount:     c.Amount.Round(2),
		Reason:     c.Reason,
		Status:     string(c.Status),
		ClosedAt:   closedAt,
	}
}
