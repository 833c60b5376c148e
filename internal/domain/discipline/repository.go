package discipline

import (
	"context"
	"time"
)

type CaseRepository interface {
	Create(ctx context.Context, c Case) (Case, error)
	GetByID(ctx context.Context, id string) (Case, error)
	ListByShiftDate(ctx context.Context, date time.Time) ([]Case, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Case, error)
	Update(ctx context.Context, c Case) (Case, error)
	Delete(ctx context.Context, id string) error
}
