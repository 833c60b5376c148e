package earnings

import (
	"context"
	"fmt"
	"time"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/earnings"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/payplan"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
)

type EarningsServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	plan         payplan.Plan
}

func NewEarningsService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository, plan payplan.Plan) earnings.EarningsService {
	return &EarningsServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		plan:         plan,
	}
}

// ForShift implements earnings.EarningsService.
func (s *EarningsServiceImpl) ForShift(ctx context.Context, date time.Time, employeeID string) (earnings.Breakdown, error) {
	sh, err := s.shiftRepo.GetByDate(ctx, date)
	if err != nil {
		return earnings.Breakdown{}, err
	}

	var pos shift.Position
	switch {
	case sh.AdminID != nil && *sh.AdminID == employeeID:
		pos = shift.PositionHallAdmin
	case sh.CashierID != nil && *sh.CashierID == employeeID:
		pos = shift.PositionCashier
	default:
		return earnings.Breakdown{}, shift.ErrEmployeeNotOnShift
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return earnings.Breakdown{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return ForShift(sh, emp, pos, s.plan), nil
}
