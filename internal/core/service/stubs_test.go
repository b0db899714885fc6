package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/staffdesk/employee-system/internal/core/domain"
	"github.com/staffdesk/employee-system/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubAdminRepo struct {
	seq    int
	admins []*domain.Admin
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{}
}

func cloneAdmin(a *domain.Admin) *domain.Admin {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == admin.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	stored := cloneAdmin(admin)
	stored.ID = fmt.Sprintf("admin_%d", r.seq)
	r.admins = append(r.admins, stored)
	return cloneAdmin(stored), nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return cloneAdmin(a), nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return cloneAdmin(a), nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindAll(_ context.Context) ([]*domain.Admin, error) {
	out := make([]*domain.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, cloneAdmin(a))
	}
	return out, nil
}

func (r *stubAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

type stubEmployeeRepo struct {
	seq       int
	employees []*domain.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	for _, existing := range r.employees {
		if existing.Email == e.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	stored := cloneEmployee(e)
	stored.ID = fmt.Sprintf("emp_%d", r.seq)
	r.employees = append(r.employees, stored)
	return cloneEmployee(stored), nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context, filter ports.ListEmployeesFilter) ([]*domain.Employee, int64, error) {
	var matched []*domain.Employee
	for _, e := range r.employees {
		if filter.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Email != "" && !strings.Contains(strings.ToLower(e.Email), strings.ToLower(filter.Email)) {
			continue
		}
		if filter.CategoryID != "" && e.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, e)
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]*domain.Employee, 0, end-start)
	for _, e := range matched[start:end] {
		page = append(page, cloneEmployee(e))
	}
	return page, total, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	for i, existing := range r.employees {
		if existing.ID == e.ID {
			r.employees[i] = cloneEmployee(e)
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	for i, e := range r.employees {
		if e.ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.employees)), nil
}

func (r *stubEmployeeRepo) SumSalaries(_ context.Context) (float64, error) {
	var total float64
	for _, e := range r.employees {
		total += e.Salary
	}
	return total, nil
}

type stubCategoryRepo struct {
	seq        int
	categories []*domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{}
}

func cloneCategory(c *domain.Category) *domain.Category {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.seq++
	stored := cloneCategory(c)
	stored.ID = fmt.Sprintf("cat_%d", r.seq)
	r.categories = append(r.categories, stored)
	return cloneCategory(stored), nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return cloneCategory(c), nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindNamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		for _, c := range r.categories {
			if c.ID == id {
				names[id] = c.Name
			}
		}
	}
	return names, nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, cloneCategory(c))
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) (*domain.Category, error) {
	for i, existing := range r.categories {
		if existing.ID == c.ID {
			r.categories[i] = cloneCategory(c)
			return cloneCategory(c), nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}
