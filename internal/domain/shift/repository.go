package shift

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByDate(ctx context.Context, date time.Time) (Shift, error)
	ListByMonth(ctx context.Context, month, year int) ([]Shift, error)
	ListByMonthAndStatus(ctx context.Context, month, year int, status Status) ([]Shift, error)
	Update(ctx context.Context, s Shift) (Shift, error)
	UpdateStatus(ctx context.Context, date time.Time, status Status) error
	UpdatePenalties(ctx context.Context, date time.Time, adminPenalty, cashierPenalty decimal.Decimal) error
}
