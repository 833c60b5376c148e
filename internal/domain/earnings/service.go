package earnings

import (
	"context"
	"time"
)

// EarningsService resolves the pay breakdown for one employee on one
// shift, recomputed on demand from the shift record and the active pay
// plan. Nothing is stored; identical inputs always produce an identical
// breakdown.
type EarningsService interface {
	ForShift(ctx context.Context, date time.Time, employeeID string) (Breakdown, error)
}
