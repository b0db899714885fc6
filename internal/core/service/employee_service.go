package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/employee-system/internal/core/domain"
	"github.com/staffdesk/employee-system/internal/core/ports"
)

const (
	defaultPageSize = 5
	maxPageSize     = 100
)

// EmployeeService implements employee CRUD, self-registration and the
// dashboard aggregates.
type EmployeeService struct {
	repo       ports.EmployeeRepository
	categories ports.CategoryRepository
	tokens     ports.TokenService
	logger     zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, categories ports.CategoryRepository, tokens ports.TokenService, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, categories: categories, tokens: tokens, logger: logger}
}

// Create persists a new employee with the password hashed. The password is
// never stored or returned in plaintext.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	emp := &domain.Employee{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Salary:       input.Salary,
		Address:      input.Address,
		Image:        input.Image,
		CategoryID:   input.CategoryID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("employee created")
	return created, nil
}

// SignUp registers an employee and issues a session token so the new account
// is logged in immediately.
func (s *EmployeeService) SignUp(ctx context.Context, input ports.CreateEmployeeInput) (string, *domain.Employee, error) {
	if _, err := s.repo.FindByEmail(ctx, normalizeEmail(input.Email)); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return "", nil, err
	}

	emp, err := s.Create(ctx, input)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(domain.RoleEmployee, emp.ID)
	if err != nil {
		return "", nil, err
	}

	return token, emp, nil
}

// List returns one page of employees with category names populated and the
// pagination totals.
func (s *EmployeeService) List(ctx context.Context, filter ports.ListEmployeesFilter) (*ports.EmployeePage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := s.populateCategories(ctx, employees); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &ports.EmployeePage{
		Employees:  employees,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populateCategories(ctx, []*domain.Employee{emp}); err != nil {
		return nil, err
	}
	return emp, nil
}

// Update overwrites the editable fields. The password is re-hashed whenever
// a new one is supplied; otherwise the stored hash is kept.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emp.Name = input.Name
	emp.Email = normalizeEmail(input.Email)
	emp.Salary = input.Salary
	emp.Address = input.Address
	emp.CategoryID = input.CategoryID
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		emp.PasswordHash = string(hash)
	}
	emp.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, emp)
	if err != nil {
		return nil, err
	}

	if err := s.populateCategories(ctx, []*domain.Employee{updated}); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

func (s *EmployeeService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *EmployeeService) SalaryTotal(ctx context.Context) (float64, error) {
	return s.repo.SumSalaries(ctx)
}

// populateCategories resolves category names for a batch of employees with a
// single repository query.
func (s *EmployeeService) populateCategories(ctx context.Context, employees []*domain.Employee) error {
	ids := make([]string, 0, len(employees))
	seen := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		if e.CategoryID == "" {
			continue
		}
		if _, ok := seen[e.CategoryID]; ok {
			continue
		}
		seen[e.CategoryID] = struct{}{}
		ids = append(ids, e.CategoryID)
	}
	if len(ids) == 0 {
		return nil
	}

	names, err := s.categories.FindNamesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, e := range employees {
		e.CategoryName = names[e.CategoryID]
	}
	return nil
}
