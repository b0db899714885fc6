package ports

import (
	"context"

	"github.com/staffdesk/employee-system/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	// Create inserts a new employee. A unique-index violation on email is
	// reported as domain.ErrEmailTaken.
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	// List returns a page of employees matching filter and the total number
	// of matches. Pagination values in filter are assumed normalized by the
	// service layer.
	List(ctx context.Context, filter ListEmployeesFilter) ([]*domain.Employee, int64, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	// Delete removes an employee, reporting domain.ErrEmployeeNotFound when
	// no document matched.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	SumSalaries(ctx context.Context) (float64, error)
}
