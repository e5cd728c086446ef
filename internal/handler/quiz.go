package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// Register registers the quiz routes
func (h *QuizHandler) Register(e *echo.Echo) {
	g := e.Group("/quizzes")
	g.POST("", h.NextQuestion)
	g.POST("/answer", h.CheckAnswer)
}

// QuizCategory selects the category of a quiz; id 0 means every category.
// The id may be a number or a numeric string.
type QuizCategory struct {
	ID   *service.FlexInt `json:"id" validate:"required"`
	Type string           `json:"type"`
}

// QuizRequest represents the request for the next quiz question
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int         `json:"previous_questions"`
}

// NextQuestion returns a random question of the quiz category that was not
// asked before, or a null question when the category is exhausted. For
// category 0 previous_questions is ignored.
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return errBadRequest
	}
	if err := c.Validate(&req); err != nil {
		return errBadRequest
	}

	question, err := h.quizService.NextQuestion(
		c.Request().Context(),
		int(*req.QuizCategory.ID),
		req.PreviousQuestions,
	)
	if err != nil {
		return errBadRequest
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"question": question,
	})
}

// AnswerRequest represents an answer to check
type AnswerRequest struct {
	QuestionID int    `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

// CheckAnswer reports whether an answer matches the stored answer
func (h *QuizHandler) CheckAnswer(c echo.Context) error {
	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return errBadRequest
	}
	if err := c.Validate(&req); err != nil {
		return errBadRequest
	}

	result, err := h.quizService.CheckAnswer(c.Request().Context(), req.QuestionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuestionNotFound):
			return errNotFound
		default:
			return errBadRequest
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"correct": result.Correct,
		"answer":  result.Answer,
	})
}
