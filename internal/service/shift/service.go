package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/discipline"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	caseRepo     discipline.CaseRepository
	employeeRepo employee.EmployeeRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, caseRepo discipline.CaseRepository, employeeRepo employee.EmployeeRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		caseRepo:     caseRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	if err := s.checkSeat(ctx, req.AdminID); err != nil {
		return shift.ShiftResponse{}, err
	}
	if err := s.checkSeat(ctx, req.CashierID); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		Date:           date,
		AdminID:        req.AdminID,
		CashierID:      req.CashierID,
		BarRevenue:     decimal.Zero,
		GameZoneGross:  decimal.Zero,
		GameZoneError:  decimal.Zero,
		VRRevenue:      decimal.Zero,
		HookahRevenue:  decimal.Zero,
		AdminPenalty:   decimal.Zero,
		CashierPenalty: decimal.Zero,
		Shortage:       decimal.Zero,
		Status:         shift.StatusNotConfirmed,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(created), nil
}

func (s *ShiftServiceImpl) checkSeat(ctx context.Context, employeeID *string) error {
	if employeeID == nil {
		return nil
	}
	if _, err := s.employeeRepo.GetByID(ctx, *employeeID); err != nil {
		return err
	}
	return nil
}

// GetByDate implements shift.ShiftService.
func (s *ShiftServiceImpl) GetByDate(ctx context.Context, date time.Time) (shift.ShiftResponse, error) {
	found, err := s.shiftRepo.GetByDate(ctx, date)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(found), nil
}

// ListByMonth implements shift.ShiftService.
func (s *ShiftServiceImpl) ListByMonth(ctx context.Context, month, year int) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toResponse(sh))
	}
	return responses, nil
}

// UpdateFigures implements shift.ShiftService. Closing figures can be
// corrected until the shift is verified; a verified shift must be
// reopened through wait_correction first.
func (s *ShiftServiceImpl) UpdateFigures(ctx context.Context, req shift.UpdateShiftFiguresRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("invalid shift date: %w", err)
	}

	current, err := s.shiftRepo.GetByDate(ctx, date)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if current.Status == shift.StatusVerified {
		return shift.ShiftResponse{}, shift.ErrShiftVerified
	}

	if req.AdminID != nil {
		if err := s.checkSeat(ctx, req.AdminID); err != nil {
			return shift.ShiftResponse{}, err
		}
		current.AdminID = req.AdminID
	}
	if req.CashierID != nil {
		if err := s.checkSeat(ctx, req.CashierID); err != nil {
			return shift.ShiftResponse{}, err
		}
		current.CashierID = req.CashierID
	}
	if req.BarRevenue != nil {
		current.BarRevenue = *req.BarRevenue
	}
	if req.GameZoneGross != nil {
		current.GameZoneGross = *req.GameZoneGross
	}
	if req.GameZoneError != nil {
		current.GameZoneError = *req.GameZoneError
	}
	if req.VRRevenue != nil {
		current.VRRevenue = *req.VRRevenue
	}
	if req.HookahRevenue != nil {
		current.HookahRevenue = *req.HookahRevenue
	}
	if req.HallCleaned != nil {
		current.HallCleaned = *req.HallCleaned
	}
	if req.TechReportFiled != nil {
		current.TechReportFiled = *req.TechReportFiled
	}
	if req.PublicationLink != nil {
		if *req.PublicationLink == "" {
			current.PublicationLink = nil
			current.PublicationVerified = false
		} else {
			current.PublicationLink = req.PublicationLink
		}
	}
	if req.PublicationVerified != nil {
		current.PublicationVerified = *req.PublicationVerified
	}
	if req.Shortage != nil {
		current.Shortage = *req.Shortage
	}
	if req.ShortagePaid != nil {
		current.ShortagePaid = *req.ShortagePaid
	}

	updated, err := s.shiftRepo.Update(ctx, current)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(updated), nil
}

// Transition implements shift.ShiftService.
func (s *ShiftServiceImpl) Transition(ctx context.Context, req shift.TransitionRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("invalid shift date: %w", err)
	}

	current, err := s.shiftRepo.GetByDate(ctx, date)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	to := shift.Status(req.Status)
	if !current.Status.CanTransition(to) {
		return shift.ShiftResponse{}, shift.ErrInvalidTransition
	}

	if err := s.shiftRepo.UpdateStatus(ctx, date, to); err != nil {
		return shift.ShiftResponse{}, err
	}

	current.Status = to
	return toResponse(current), nil
}

// RecomputePenalties implements shift.ShiftService. The per-seat totals
// are re-derived from scratch: only closed cases count, each toward the
// seat it was written against.
func (s *ShiftServiceImpl) RecomputePenalties(ctx context.Context, date time.Time) error {
	cases, err := s.caseRepo.ListByShiftDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to list disciplinary cases: %w", err)
	}

	adminPenalty := decimal.Zero
	cashierPenalty := decimal.Zero
	for _, c := range cases {
		if c.Status != discipline.StatusClosed {
			continue
		}
		if c.Seat == shift.PositionCashier {
			cashierPenalty = cashierPenalty.Add(c.Amount)
		} else {
			adminPenalty = adminPenalty.Add(c.Amount)
		}
	}

	return s.shiftRepo.UpdatePenalties(ctx, date, adminPenalty, cashierPenalty)
}

func toResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:                  sh.ID,
		Date:                sh.Date.Format("2006-01-02"),
		AdminID:             sh.AdminID,
		CashierID:           sh.CashierID,
		BarRevenue:          sh.BarRevenue,
		GameZoneGross:       sh.GameZoneGross,
		GameZoneError:       sh.GameZoneError,
		GameZoneNet:         sh.GameZoneNet(),
		VRRevenue:           sh.VRRevenue,
		HookahRevenue:       sh.HookahRevenue,
		HallCleaned:         sh.HallCleaned,
		TechReportFiled:     sh.TechReportFiled,
		PublicationLink:     sh.PublicationLink,
		PublicationVerified: sh.PublicationVerified,
		AdminPenalty:        sh.AdminPenalty,
		CashierPenalty:      sh.CashierPenalty,
		Shortage:            sh.Shortage,
		ShortagePaid:        sh.ShortagePaid,
		Status:              string(sh.Status),
	}
}
