package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// Question represents a trivia question. Its JSON form is the formatted
// question returned by every endpoint.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   *int   `json:"category"` // Not checked against categories on write
	Difficulty int    `json:"difficulty"`
}

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves all questions ordered by ascending id
	List(ctx context.Context) ([]*Question, error)

	// Count returns the total number of questions
	Count(ctx context.Context) (int, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create inserts a question and fills in its ID
	Create(ctx context.Context, question *Question) error

	// BulkCreate inserts multiple questions in a single transaction
	BulkCreate(ctx context.Context, questions []*Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error

	// Search returns questions whose text contains term, case-insensitively,
	// ordered by ascending id
	Search(ctx context.Context, term string) ([]*Question, error)

	// ListByCategory retrieves every question of a category
	ListByCategory(ctx context.Context, categoryID int) ([]*Question, error)

	// ListByCategoryExcluding retrieves the questions of a category whose ids
	// are not in exclude
	ListByCategoryExcluding(ctx context.Context, categoryID int, exclude []int) ([]*Question, error)
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
