package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	employedAt, _ := time.Parse("2006-01-02", req.EmployedAt)

	var certifiedAt *time.Time
	if req.CertifiedAt != nil {
		parsed, _ := time.Parse("2006-01-02", *req.CertifiedAt)
		certifiedAt = &parsed
	}

	salary := decimal.Zero
	if req.BaseSalary != nil {
		salary = *req.BaseSalary
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:    req.FullName,
		Role:        employee.Role(req.Role),
		BaseSalary:  salary,
		EmployedAt:  employedAt,
		CertifiedAt: certifiedAt,
		PhoneNumber: req.PhoneNumber,
		Active:      true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return toResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(found), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil && *req.FullName != "" {
		current.FullName = *req.FullName
	}
	if req.Role != nil {
		current.Role = employee.Role(*req.Role)
	}
	if req.BaseSalary != nil {
		current.BaseSalary = *req.BaseSalary
	}
	if req.EmployedAt != nil {
		parsed, _ := time.Parse("2006-01-02", *req.EmployedAt)
		current.EmployedAt = parsed
	}
	if req.CertifiedAt != nil {
		if *req.CertifiedAt == "" {
			current.CertifiedAt = nil
		} else {
			parsed, _ := time.Parse("2006-01-02", *req.CertifiedAt)
			current.CertifiedAt = &parsed
		}
	}
	if req.PhoneNumber != nil {
		if *req.PhoneNumber == "" {
			current.PhoneNumber = nil
		} else {
			current.PhoneNumber = req.PhoneNumber
		}
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	updated, err := s.EmployeeRepository.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(updated), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.EmployeeRepository.Deactivate(ctx, id)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	var certifiedAt *string
	if emp.CertifiedAt != nil {
		formatted := emp.CertifiedAt.Format("2006-01-02")
		certifiedAt = &formatted
	}

	return employee.EmployeeResponse{
		ID:          emp.ID,
		FullName:    emp.FullName,
		Role:        string(emp.Role),
		BaseSalary:  emp.BaseSalary,
		EmployedAt:  emp.EmployedAt.Format("2006-01-02"),
		CertifiedAt: certifiedAt,
		PhoneNumber: emp.PhoneNumber,
		Active:      emp.Active,
	}
}
