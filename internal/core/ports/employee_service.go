package ports

import (
	"context"

	"github.com/staffdesk/employee-system/internal/core/domain"
)

// CreateEmployeeInput carries all data needed to create a new employee.
// Password is plaintext here; the service hashes it before persistence.
type CreateEmployeeInput struct {
	Name       string
	Email      string
	Password   string
	Salary     float64
	Address    string
	Image      string
	CategoryID string
}

// UpdateEmployeeInput carries the editable fields. Name, email, salary,
// address and category always overwrite the stored values. Password is
// optional: when non-empty it is re-hashed and replaced.
type UpdateEmployeeInput struct {
	Name       string
	Email      string
	Password   string
	Salary     float64
	Address    string
	CategoryID string
}

// ListEmployeesFilter carries the list query parameters. Name and Email are
// case-insensitive substring matches; CategoryID is an exact match.
type ListEmployeesFilter struct {
	Name       string
	Email      string
	CategoryID string
	Page       int // 1-based
	Limit      int // rows per page, capped by the service
}

// EmployeePage is one page of results plus pagination totals.
type EmployeePage struct {
	Employees  []*domain.Employee
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EmployeeService implements employee CRUD, self-registration and the
// aggregate reads used by the admin dashboard.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	// SignUp registers an employee and issues a session token for
	// immediate login.
	SignUp(ctx context.Context, input CreateEmployeeInput) (string, *domain.Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) (*EmployeePage, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// SalaryTotal sums the salary field across all employees.
	SalaryTotal(ctx context.Context) (float64, error)
}
