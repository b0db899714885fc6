package ports

import (
	"context"

	"github.com/staffdesk/employee-system/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	// FindNamesByIDs resolves a set of category ids to their names in one
	// query. Unknown ids are simply absent from the result.
	FindNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	FindAll(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
