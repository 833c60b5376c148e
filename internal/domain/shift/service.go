package shift

import (
	"context"
	"time"
)

type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetByDate(ctx context.Context, date time.Time) (ShiftResponse, error)
	ListByMonth(ctx context.Context, month, year int) ([]ShiftResponse, error)
	UpdateFigures(ctx context.Context, req UpdateShiftFiguresRequest) (ShiftResponse, error)
	Transition(ctx context.Context, req TransitionRequest) (ShiftResponse, error)

	// RecomputePenalties re-derives the per-seat penalty totals of the
	// shift on the given date from its closed disciplinary cases and
	// persists them. Called synchronously from the discipline write path.
	RecomputePenalties(ctx context.Context, date time.Time) error
}
