package ports

import (
	"context"

	"github.com/staffdesk/employee-system/internal/core/domain"
)

// Profile is the password-free view of whoever owns a session token,
// admin or employee.
type Profile struct {
	ID       string  `json:"id"`
	Role     string  `json:"role"`
	Email    string  `json:"email"`
	Name     string  `json:"name,omitempty"`
	Salary   float64 `json:"salary,omitempty"`
	Address  string  `json:"address,omitempty"`
	Image    string  `json:"image,omitempty"`
	Category string  `json:"category,omitempty"`
}

// AuthService implements admin authentication and the admin-area reads.
type AuthService interface {
	// LoginAdmin returns a session token on success. Unknown email and wrong
	// password both fail with domain.ErrInvalidCredentials so nothing is
	// leaked about which part was wrong.
	LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error)
	// RegisterAdmin creates an admin credential. A duplicate email fails
	// with domain.ErrEmailTaken.
	RegisterAdmin(ctx context.Context, email, password string) (*domain.Admin, error)
	// Profile resolves the record behind a verified token by role.
	Profile(ctx context.Context, claims domain.TokenClaims) (*Profile, error)
	AdminRecords(ctx context.Context) ([]*domain.Admin, error)
	AdminCount(ctx context.Context) (int64, error)
}
