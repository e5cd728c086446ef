package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// QuestionRepository implements domain.QuestionRepository
type QuestionRepository struct {
	db *gorm.DB
}

// List retrieves all questions ordered by id
func (r *QuestionRepository) List(ctx context.Context) ([]*domain.Question, error) {
	return r.find(r.db.WithContext(ctx), "list questions")
}

// Count returns the number of stored questions
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&questionRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return int(count), nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	var rec questionRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return rec.toDomain(), nil
}

// Create creates a new question
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	rec := newQuestionRecord(question)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	question.ID = rec.ID
	return nil
}

// BulkCreate creates multiple questions in a single transaction
func (r *QuestionRepository) BulkCreate(ctx context.Context, questions []*domain.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, question := range questions {
			rec := newQuestionRecord(question)
			if err := tx.Create(rec).Error; err != nil {
				return fmt.Errorf("failed to create question: %w", err)
			}
			question.ID = rec.ID
		}
		return nil
	})
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&questionRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// Search retrieves the questions whose text contains term, ignoring case.
// SQLite's LOWER and LIKE only fold ASCII, so matching happens here with
// Unicode case folding.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	questions, err := r.find(r.db.WithContext(ctx), "search questions")
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	needle := fold.String(term)

	matches := make([]*domain.Question, 0, len(questions))
	for _, q := range questions {
		if strings.Contains(fold.String(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

// ListByCategory retrieves the questions of a category
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]*domain.Question, error) {
	return r.find(r.db.WithContext(ctx).Where("category = ?", categoryID), "list questions by category")
}

// ListByCategoryExcluding retrieves the questions of a category that are
// not in exclude
func (r *QuestionRepository) ListByCategoryExcluding(ctx context.Context, categoryID int, exclude []int) ([]*domain.Question, error) {
	q := r.db.WithContext(ctx).Where("category = ?", categoryID)
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	return r.find(q, "list quiz candidates")
}

func (r *QuestionRepository) find(q *gorm.DB, op string) ([]*domain.Question, error) {
	var records []questionRecord
	if err := q.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	questions := make([]*domain.Question, 0, len(records))
	for i := range records {
		questions = append(questions, records[i].toDomain())
	}
	return questions, nil
}
