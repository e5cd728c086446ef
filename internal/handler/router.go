package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/logging"
	"github.com/zizouhuweidi/trivia/internal/metrics"
	"github.com/zizouhuweidi/trivia/internal/service"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// Dependencies are the collaborators the router dispatches to. Hub and
// Metrics are optional.
type Dependencies struct {
	Logger     *zap.Logger
	Store      domain.Pinger
	Categories *service.CategoryService
	Questions  *service.QuestionService
	Quiz       *service.QuizService
	Hub        *ws.Hub
	Metrics    *metrics.HTTP
}

// NewRouter builds the echo instance serving the trivia API
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(deps.Logger)
	e.Validator = NewValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logging.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		e.Use(deps.Metrics.Middleware())
		e.GET("/metrics", deps.Metrics.Handler())
	}
	e.Use(middleware.Recover())
	e.Use(CORS()...)

	NewCategoryHandler(deps.Categories, deps.Questions).Register(e)
	NewQuestionHandler(deps.Questions).Register(e)
	NewQuizHandler(deps.Quiz).Register(e)

	e.GET("/health", NewHealthHandler(deps.Store, deps.Logger).Check)
	if deps.Hub != nil {
		e.GET("/ws", NewWebSocketHandler(deps.Hub).HandleWebSocket)
	}

	return e
}
