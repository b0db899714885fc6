package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdesk/employee-system/internal/core/domain"
	"github.com/staffdesk/employee-system/internal/core/ports"
)

// CategoryService implements category CRUD.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Category{Name: name, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id, name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.ErrValidation
	}

	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cat.Name = name
	cat.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, cat)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
