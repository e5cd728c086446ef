package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// Register registers the question routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	g := e.Group("/questions")
	g.GET("", h.ListQuestions)
	g.POST("", h.CreateQuestion)
	g.POST("/search", h.SearchQuestions)
	g.POST("/bulk", h.BulkCreateQuestions)
	g.DELETE("/:id", h.DeleteQuestion)
}

// ListQuestions godoc
// @Summary List questions
// @Description Ten questions per page ordered by id, with the total count and all categories
// @Tags questions
// @Produce json
// @Param page query int false "1-based page number"
// @Success 200 {object} map[string]any
// @Failure 404 {object} ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}

	result, err := h.questionService.ListQuestions(c.Request().Context(), page)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageNotFound):
			return errNotFound
		default:
			return errInternal
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
		"categories":      result.Categories,
	})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.questionService.DeleteQuestion(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrQuestionNotFound):
			return errNotFound
		default:
			return errUnprocessable
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"deleted": id,
	})
}

// CreateQuestion godoc
// @Summary Create a question
// @Description question, answer and difficulty are required; category is optional
// @Tags questions
// @Accept json
// @Produce json
// @Param question body service.NewQuestion true "Question data"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req service.NewQuestion
	if err := c.Bind(&req); err != nil {
		return errBadRequest
	}
	if err := c.Validate(&req); err != nil {
		return errBadRequest
	}

	question, total, err := h.questionService.CreateQuestion(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuestion):
			return errBadRequest
		default:
			return errUnprocessable
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":         true,
		"questionId":      question.ID,
		"question":        question,
		"total_questions": total,
	})
}

// BulkCreateQuestionsRequest represents the request body for bulk creating questions
type BulkCreateQuestionsRequest struct {
	Questions []service.NewQuestion `json:"questions" validate:"required,min=1,dive"`
}

// BulkCreateQuestions handles bulk creation of questions
func (h *QuestionHandler) BulkCreateQuestions(c echo.Context) error {
	var req BulkCreateQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return errBadRequest
	}
	if err := c.Validate(&req); err != nil {
		return errBadRequest
	}

	questions, total, err := h.questionService.BulkCreateQuestions(c.Request().Context(), req.Questions)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuestion):
			return errBadRequest
		default:
			return errUnprocessable
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":         true,
		"created":         len(questions),
		"questions":       questions,
		"total_questions": total,
	})
}

// SearchTerm is the text a search looks for. A JSON number is searched for
// as written and null is the empty term.
type SearchTerm string

// UnmarshalJSON implements json.Unmarshaler
func (t *SearchTerm) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = SearchTerm(s)
	case bytes.Equal(data, []byte("null")):
		*t = ""
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid search term %s", data)
		}
		*t = SearchTerm(n)
	}
	return nil
}

// SearchRequest is the body of a question search
type SearchRequest struct {
	SearchTerm SearchTerm `json:"searchTerm"`
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring match on the question text. An empty term returns every question.
// @Tags questions
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Search term"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return errBadRequest
	}

	questions, err := h.questionService.SearchQuestions(c.Request().Context(), string(req.SearchTerm))
	if err != nil {
		return errUnprocessable
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":         true,
		"questions":       questions,
		"total_questions": len(questions),
	})
}
