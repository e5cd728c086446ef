package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// Register registers the category routes
func (h *CategoryHandler) Register(e *echo.Echo) {
	g := e.Group("/categories")
	g.GET("", h.ListCategories)
	g.GET("/:id/questions", h.QuestionsByCategory)
}

// ListCategories returns the id to type mapping of all categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories(c.Request().Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoCategories):
			return errNotFound
		default:
			return errBadRequest
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

// QuestionsByCategory returns every question of a category. total_questions
// counts the questions of all categories.
func (h *CategoryHandler) QuestionsByCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	result, err := h.questionService.QuestionsByCategory(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			return errNotFound
		default:
			return errBadRequest
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":          true,
		"questions":        result.Questions,
		"current_category": result.CurrentCategory,
		"total_questions":  result.TotalQuestions,
	})
}

// pathID parses the :id path parameter. Paths with a non-integer id do not
// name a resource.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errNotFound
	}
	return id, nil
}
