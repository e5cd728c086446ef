package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryCache caches the category mapping between requests. Get returns
// cache.ErrMiss when nothing is cached.
type CategoryCache interface {
	Get(ctx context.Context) (map[int]string, error)
	Set(ctx context.Context, categories map[int]string) error
}

// CategoryService handles category lookups
type CategoryService struct {
	repo   domain.CategoryRepository
	cache  CategoryCache
	logger *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(repo domain.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		logger: logger,
	}
}

// WithCache makes the service read the category mapping through c
func (s *CategoryService) WithCache(c CategoryCache) *CategoryService {
	s.cache = c
	return s
}

// Categories returns the id to type mapping of every category. The mapping
// may be empty.
func (s *CategoryService) Categories(ctx context.Context) (map[int]string, error) {
	if s.cache != nil {
		categories, err := s.cache.Get(ctx)
		if err == nil {
			return categories, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("category cache read failed", zap.Error(err))
		}
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	categories := domain.CategoryMap(list)

	if s.cache != nil && len(categories) > 0 {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn("category cache write failed", zap.Error(err))
		}
	}

	return categories, nil
}

// ListCategories returns the mapping of every category, or
// domain.ErrNoCategories when there are none
func (s *CategoryService) ListCategories(ctx context.Context) (map[int]string, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, domain.ErrNoCategories
	}
	return categories, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			s.logger.Error("failed to get category", zap.Int("category_id", id), zap.Error(err))
		}
		return nil, err
	}
	return category, nil
}
