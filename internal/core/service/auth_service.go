package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/employee-system/internal/core/domain"
	"github.com/staffdesk/employee-system/internal/core/ports"
)

// AuthService implements admin login, admin registration and profile lookup.
type AuthService struct {
	admins    ports.AdminRepository
	employees ports.EmployeeRepository
	tokens    ports.TokenService
	logger    zerolog.Logger
}

func NewAuthService(admins ports.AdminRepository, employees ports.EmployeeRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{admins: admins, employees: employees, tokens: tokens, logger: logger}
}

// LoginAdmin authenticates an admin and issues a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.RoleAdmin, admin.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", admin.Email).Msg("admin logged in")
	return token, admin, nil
}

// RegisterAdmin creates a new admin credential with a hashed password.
func (s *AuthService) RegisterAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	if _, err := s.admins.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.admins.Create(ctx, admin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("admin registered")
	return created, nil
}

// Profile resolves the record behind a verified token, by role, with the
// password hash stripped.
func (s *AuthService) Profile(ctx context.Context, claims domain.TokenClaims) (*ports.Profile, error) {
	switch claims.Role {
	case domain.RoleAdmin:
		admin, err := s.admins.FindByID(ctx, claims.SubjectID)
		if err != nil {
			return nil, err
		}
		return &ports.Profile{ID: admin.ID, Role: domain.RoleAdmin, Email: admin.Email}, nil
	case domain.RoleEmployee:
		emp, err := s.employees.FindByID(ctx, claims.SubjectID)
		if err != nil {
			return nil, err
		}
		return &ports.Profile{
			ID:       emp.ID,
			Role:     domain.RoleEmployee,
			Email:    emp.Email,
			Name:     emp.Name,
			Salary:   emp.Salary,
			Address:  emp.Address,
			Image:    emp.Image,
			Category: emp.CategoryID,
		}, nil
	default:
		return nil, domain.ErrTokenMalformed
	}
}

func (s *AuthService) AdminRecords(ctx context.Context) ([]*domain.Admin, error) {
	return s.admins.FindAll(ctx)
}

func (s *AuthService) AdminCount(ctx context.Context) (int64, error) {
	return s.admins.Count(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
