package shift

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/discipline"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
)

type fakeShiftRepo struct {
	shifts map[string]shift.Shift

	updatedAdminPenalty   decimal.Decimal
	updatedCashierPenalty decimal.Decimal
	penaltiesUpdated      bool
	statusUpdated         shift.Status
}

func newFakeShiftRepo(shifts ...shift.Shift) *fakeShiftRepo {
	repo := &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
	for _, s := range shifts {
		repo.shifts[s.Date.Format("2006-01-02")] = s
	}
	return repo
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	key := s.Date.Format("2006-01-02")
	if _, exists := f.shifts[key]; exists {
		return shift.Shift{}, shift.ErrShiftDateTaken
	}
	s.ID = "shift-" + key
	f.shifts[key] = s
	return s, nil
}

func (f *fakeShiftRepo) GetByDate(ctx context.Context, date time.Time) (shift.Shift, error) {
	s, ok := f.shifts[date.Format("2006-01-02")]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) ListByMonth(ctx context.Context, month, year int) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if int(s.Date.Month()) == month && s.Date.Year() == year {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) ListByMonthAndStatus(ctx context.Context, month, year int, status shift.Status) ([]shift.Shift, error) {
	all, _ := f.ListByMonth(ctx, month, year)
	var out []shift.Shift
	for _, s := range all {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	f.shifts[s.Date.Format("2006-01-02")] = s
	return s, nil
}

func (f *fakeShiftRepo) UpdateStatus(ctx context.Context, date time.Time, status shift.Status) error {
	key := date.Format("2006-01-02")
	s, ok := f.shifts[key]
	if !ok {
		return shift.ErrShiftNotFound
	}
	s.Status = status
	f.shifts[key] = s
	f.statusUpdated = status
	return nil
}

func (f *fakeShiftRepo) UpdatePenalties(ctx context.Context, date time.Time, adminPenalty, cashierPenalty decimal.Decimal) error {
	f.updatedAdminPenalty = adminPenalty
	f.updatedCashierPenalty = cashierPenalty
	f.penaltiesUpdated = true
	return nil
}

type fakeCaseRepo struct {
	cases []discipline.Case
}

func (f *fakeCaseRepo) Create(ctx context.Context, c discipline.Case) (discipline.Case, error) {
	return c, nil
}

func (f *fakeCaseRepo) GetByID(ctx context.Context, id string) (discipline.Case, error) {
	return discipline.Case{}, discipline.ErrCaseNotFound
}

func (f *fakeCaseRepo) ListByShiftDate(ctx context.Context, date time.Time) ([]discipline.Case, error) {
	return f.cases, nil
}

func (f *fakeCaseRepo) ListByEmployee(ctx context.Context, employeeID string) ([]discipline.Case, error) {
	return f.cases, nil
}

func (f *fakeCaseRepo) Update(ctx context.Context, c discipline.Case) (discipline.Case, error) {
	return c, nil
}

func (f *fakeCaseRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		if emp, ok := f.employees[id]; ok {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if !activeOnly || emp.Active {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

func testDate() time.Time {
	return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestRecomputePenalties_SumsOnlyClosedCasesPerSeat(t *testing.T) {
	t.Parallel()

	date := testDate()
	shiftRepo := newFakeShiftRepo(shift.Shift{Date: date, Status: shift.StatusUnverified})
	caseRepo := &fakeCaseRepo{cases: []discipline.Case{
		{Seat: shift.PositionHallAdmin, Amount: decimal.NewFromInt(100), Status: discipline.StatusClosed},
		{Seat: shift.PositionHallAdmin, Amount: decimal.NewFromInt(50), Status: discipline.StatusOpen},
		{Seat: shift.PositionCashier, Amount: decimal.NewFromInt(200), Status: discipline.StatusClosed},
		{Seat: shift.PositionCashier, Amount: decimal.NewFromInt(75), Status: discipline.StatusClosed},
	}}

	svc := NewShiftService(shiftRepo, caseRepo, &fakeEmployeeRepo{})

	require.NoError(t, svc.RecomputePenalties(context.Background(), date))

	assert.True(t, shiftRepo.penaltiesUpdated)
	assert.True(t, shiftRepo.updatedAdminPenalty.Equal(decimal.NewFromInt(100)),
		"open cases must not count, got %s", shiftRepo.updatedAdminPenalty)
	assert.True(t, shiftRepo.updatedCashierPenalty.Equal(decimal.NewFromInt(275)))
}

func TestRecomputePenalties_NoClosedCasesZeroesTotals(t *testing.T) {
	t.Parallel()

	date := testDate()
	shiftRepo := newFakeShiftRepo(shift.Shift{Date: date, Status: shift.StatusUnverified})
	caseRepo := &fakeCaseRepo{cases: []discipline.Case{
		{Seat: shift.PositionHallAdmin, Amount: decimal.NewFromInt(100), Status: discipline.StatusOpen},
	}}

	svc := NewShiftService(shiftRepo, caseRepo, &fakeEmployeeRepo{})

	require.NoError(t, svc.RecomputePenalties(context.Background(), date))
	assert.True(t, shiftRepo.updatedAdminPenalty.IsZero())
	assert.True(t, shiftRepo.updatedCashierPenalty.IsZero())
}

func TestTransition_RejectsInvalidStep(t *testing.T) {
	t.Parallel()

	date := testDate()
	shiftRepo := newFakeShiftRepo(shift.Shift{Date: date, Status: shift.StatusNotConfirmed})
	svc := NewShiftService(shiftRepo, &fakeCaseRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Transition(context.Background(), shift.TransitionRequest{
		Date:   date.Format("2006-01-02"),
		Status: string(shift.StatusVerified),
	})
	assert.ErrorIs(t, err, shift.ErrInvalidTransition)
}

func TestTransition_VerifiedReopensThroughWaitCorrection(t *testing.T) {
	t.Parallel()

	date := testDate()
	shiftRepo := newFakeShiftRepo(shift.Shift{Date: date, Status: shift.StatusVerified})
	svc := NewShiftService(shiftRepo, &fakeCaseRepo{}, &fakeEmployeeRepo{})

	resp, err := svc.Transition(context.Background(), shift.TransitionRequest{
		Date:   date.Format("2006-01-02"),
		Status: string(shift.StatusWaitCorrection),
	})
	require.NoError(t, err)
	assert.Equal(t, string(shift.StatusWaitCorrection), resp.Status)
}

func TestUpdateFigures_RejectsVerifiedShift(t *testing.T) {
	t.Parallel()

	date := testDate()
	shiftRepo := newFakeShiftRepo(shift.Shift{Date: date, Status: shift.StatusVerified})
	svc := NewShiftService(shiftRepo, &fakeCaseRepo{}, &fakeEmployeeRepo{})

	bar := decimal.NewFromInt(1000)
	_, err := svc.UpdateFigures(context.Background(), shift.UpdateShiftFiguresRequest{
		Date:       date.Format("2006-01-02"),
		BarRevenue: &bar,
	})
	assert.ErrorIs(t, err, shift.ErrShiftVerified)
}

func TestCreate_RejectsUnknownSeatEmployee(t *testing.T) {
	t.Parallel()

	shiftRepo := newFakeShiftRepo()
	svc := NewShiftService(shiftRepo, &fakeCaseRepo{}, &fakeEmployeeRepo{employees: map[string]employee.Employee{}})

	unknown := "ghost"
	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{
		Date:    "2024-06-15",
		AdminID: &unknown,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate_SecondShiftSameDateConflicts(t *testing.T) {
	t.Parallel()

	shiftRepo := newFakeShiftRepo()
	svc := NewShiftService(shiftRepo, &fakeCaseRepo{}, &fakeEmployeeRepo{})

	_, err := svc.Create(context.Background(), shift.CreateShiftRequest{Date: "2024-06-15"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), shift.CreateShiftRequest{Date: "2024-06-15"})
	assert.ErrorIs(t, err, shift.ErrShiftDateTaken)
}
