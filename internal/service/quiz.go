package service

import (
	"context"
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// AllCategories selects quiz questions from every category
const AllCategories = 0

// QuizService picks quiz questions and checks answers
type QuizService struct {
	questions domain.QuestionRepository
	logger    *zap.Logger
	pick      func(n int) int
}

// NewQuizService creates a new quiz service
func NewQuizService(questions domain.QuestionRepository, logger *zap.Logger) *QuizService {
	return &QuizService{
		questions: questions,
		logger:    logger,
		pick:      rand.Intn,
	}
}

// NextQuestion returns a random question of the category that is not in
// previous. With AllCategories any question may be returned and previous
// is not consulted. It returns nil when no candidate is left.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	var (
		candidates []*domain.Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.questions.List(ctx)
	} else {
		candidates, err = s.questions.ListByCategoryExcluding(ctx, categoryID, previous)
	}
	if err != nil {
		s.logger.Error("failed to load quiz candidates", zap.Int("category_id", categoryID), zap.Error(err))
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[s.pick(len(candidates))], nil
}

// AnswerResult is the outcome of an answer check
type AnswerResult struct {
	Correct bool
	Answer  string
}

// CheckAnswer compares a submitted answer with the stored one using
// validation.IsSimilarAnswer
func (s *QuizService) CheckAnswer(ctx context.Context, questionID int, answer string) (*AnswerResult, error) {
	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		if !errors.Is(err, domain.ErrQuestionNotFound) {
			s.logger.Error("failed to get question", zap.Int("question_id", questionID), zap.Error(err))
		}
		return nil, err
	}

	return &AnswerResult{
		Correct: validation.IsSimilarAnswer(answer, question.Answer),
		Answer:  question.Answer,
	}, nil
}
