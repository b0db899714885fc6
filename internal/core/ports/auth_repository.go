package ports

import (
	"context"

	"github.com/staffdesk/employee-system/internal/core/domain"
)

// AdminRepository defines persistence for admin credentials.
type AdminRepository interface {
	// Create inserts a new admin. A unique-index violation on email is
	// reported as domain.ErrEmailTaken.
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindAll(ctx context.Context) ([]*domain.Admin, error)
	Count(ctx context.Context) (int64, error)
}
