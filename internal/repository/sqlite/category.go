package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"gorm.io/gorm"
)

// CategoryRepository implements domain.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// List retrieves all categories ordered by id
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]*domain.Category, 0, len(records))
	for _, rec := range records {
		categories = append(categories, &domain.Category{ID: rec.ID, Type: rec.Type})
	}
	return categories, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	var rec categoryRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &domain.Category{ID: rec.ID, Type: rec.Type}, nil
}
