package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Event types published to the question feed
const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

// EventPublisher fans question change events out to listeners
type EventPublisher interface {
	Publish(eventType string, payload any)
}

// QuestionService handles question-related operations
type QuestionService struct {
	questions  domain.QuestionRepository
	categories *CategoryService
	events     EventPublisher
	logger     *zap.Logger
}

// NewQuestionService creates a new question service. events may be nil.
func NewQuestionService(questions domain.QuestionRepository, categories *CategoryService, events EventPublisher, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		questions:  questions,
		categories: categories,
		events:     events,
		logger:     logger,
	}
}

// QuestionPage is one page of the question listing
type QuestionPage struct {
	Questions      []*domain.Question
	TotalQuestions int
	Categories     map[int]string
}

// ListQuestions returns the 1-based page of questions ordered by id.
// An empty page yields ErrPageNotFound.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	categories, err := s.categories.Categories(ctx)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.List(ctx)
	if err != nil {
		s.logger.Error("failed to list questions", zap.Error(err))
		return nil, err
	}

	current := Paginate(questions, page)
	if len(current) == 0 {
		return nil, ErrPageNotFound
	}

	return &QuestionPage{
		Questions:      current,
		TotalQuestions: len(questions),
		Categories:     categories,
	}, nil
}

// DeleteQuestion deletes a question by id
func (s *QuestionService) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrQuestionNotFound) {
			s.logger.Error("failed to get question", zap.Int("question_id", id), zap.Error(err))
		}
		return err
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrQuestionNotFound) {
			s.logger.Error("failed to delete question", zap.Int("question_id", id), zap.Error(err))
		}
		return err
	}

	s.publish(EventQuestionDeleted, map[string]int{"id": id})
	return nil
}

// NewQuestion is the input for creating a question. category and
// difficulty may be sent as numeric strings.
type NewQuestion struct {
	Question   string   `json:"question" validate:"required"`
	Answer     string   `json:"answer" validate:"required"`
	Category   *FlexInt `json:"category"`
	Difficulty FlexInt  `json:"difficulty" validate:"required"`
}

// Validate checks that the fields every question needs are set. Category
// is optional.
func (n NewQuestion) Validate() error {
	if n.Question == "" {
		return fmt.Errorf("%w: question text cannot be empty", ErrInvalidQuestion)
	}
	if n.Answer == "" {
		return fmt.Errorf("%w: answer cannot be empty", ErrInvalidQuestion)
	}
	if n.Difficulty == 0 {
		return fmt.Errorf("%w: difficulty is required", ErrInvalidQuestion)
	}
	return nil
}

func (n NewQuestion) toDomain() *domain.Question {
	return &domain.Question{
		Question:   n.Question,
		Answer:     n.Answer,
		Category:   n.Category.Ptr(),
		Difficulty: int(n.Difficulty),
	}
}

// CreateQuestion stores a new question and returns it with the new total
// question count
func (s *QuestionService) CreateQuestion(ctx context.Context, input NewQuestion) (*domain.Question, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	question := input.toDomain()
	if err := s.questions.Create(ctx, question); err != nil {
		s.logger.Error("failed to create question", zap.Error(err))
		return nil, 0, err
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count questions", zap.Error(err))
		return nil, 0, err
	}

	s.publish(EventQuestionCreated, question)
	return question, total, nil
}

// BulkCreateQuestions stores all questions in one transaction
func (s *QuestionService) BulkCreateQuestions(ctx context.Context, inputs []NewQuestion) ([]*domain.Question, int, error) {
	if len(inputs) == 0 {
		return nil, 0, fmt.Errorf("%w: no questions given", ErrInvalidQuestion)
	}

	questions := make([]*domain.Question, 0, len(inputs))
	for i, input := range inputs {
		if err := input.Validate(); err != nil {
			return nil, 0, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, input.toDomain())
	}

	if err := s.questions.BulkCreate(ctx, questions); err != nil {
		s.logger.Error("failed to bulk create questions", zap.Int("count", len(questions)), zap.Error(err))
		return nil, 0, err
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count questions", zap.Error(err))
		return nil, 0, err
	}

	for _, question := range questions {
		s.publish(EventQuestionCreated, question)
	}
	return questions, total, nil
}

// SearchQuestions returns the questions containing term, ignoring case.
// An empty term matches every question.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]*domain.Question, error) {
	questions, err := s.questions.Search(ctx, term)
	if err != nil {
		s.logger.Error("failed to search questions", zap.String("term", term), zap.Error(err))
		return nil, err
	}
	return questions, nil
}

// CategoryQuestions is the question listing of one category
type CategoryQuestions struct {
	Questions       []*domain.Question
	CurrentCategory int
	// TotalQuestions counts every stored question, not only this category's.
	TotalQuestions int
}

// QuestionsByCategory returns every question of a category
func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID int) (*CategoryQuestions, error) {
	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ListByCategory(ctx, category.ID)
	if err != nil {
		s.logger.Error("failed to list questions by category", zap.Int("category_id", categoryID), zap.Error(err))
		return nil, err
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count questions", zap.Error(err))
		return nil, err
	}

	return &CategoryQuestions{
		Questions:       questions,
		CurrentCategory: categoryID,
		TotalQuestions:  total,
	}, nil
}

func (s *QuestionService) publish(eventType string, payload any) {
	if s.events != nil {
		s.events.Publish(eventType, payload)
	}
}
