package discipline

import "context"

// CaseService manages disciplinary cases. Closing, reopening or deleting
// a case recomputes the owning shift's penalty totals synchronously in
// the same write path.
type CaseService interface {
	Create(ctx context.Context, req CreateCaseRequest) (CaseResponse, error)
	Get(ctx context.Context, id string) (CaseResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]CaseResponse, error)
	Update(ctx context.Context, req UpdateCaseRequest) (CaseResponse, error)
	Close(ctx context.Context, id string) (CaseResponse, error)
	Reopen(ctx context.Context, id string) (CaseResponse, error)
	Delete(ctx context.Context, id string) error
}
