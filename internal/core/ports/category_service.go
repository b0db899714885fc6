package ports

import (
	"context"

	"github.com/staffdesk/employee-system/internal/core/domain"
)

// CategoryService implements category CRUD. Category names are not unique.
type CategoryService interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
