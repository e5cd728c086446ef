package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/logging"
	"github.com/zizouhuweidi/trivia/internal/metrics"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

// store is the storage backend selected by DB_DRIVER
type store struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	pinger     domain.Pinger
	close      func()
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s, err := sqlite.NewStore(db)
		if err != nil {
			return nil, err
		}
		return &store{
			categories: s.Categories(),
			questions:  s.Questions(),
			pinger:     s,
			close:      func() { s.Close() },
		}, nil
	default:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &store{
			categories: postgres.NewCategoryRepository(pool),
			questions:  postgres.NewQuestionRepository(pool),
			pinger:     pool,
			close:      pool.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize storage
	st, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("driver", cfg.Driver), zap.Error(err))
	}
	defer st.close()

	// Initialize services
	categoryService := service.NewCategoryService(st.categories, logger)
	if cfg.Redis.Enabled() {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
		}
		defer redisClient.Close()
		categoryService.WithCache(cache.NewCategoryCache(redisClient, cfg.Redis.TTL))
	}

	// Initialize websocket hub
	hub := websocket.NewHub(logger)
	go hub.Run()
	defer hub.Stop()

	e := handler.NewRouter(handler.Dependencies{
		Logger:     logger,
		Store:      st.pinger,
		Categories: categoryService,
		Questions:  service.NewQuestionService(st.questions, categoryService, hub, logger),
		Quiz:       service.NewQuizService(st.questions, logger),
		Hub:        hub,
		Metrics:    metrics.NewHTTP(),
	})

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", cfg.HTTPAddr), zap.String("driver", cfg.Driver))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server")
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down server", zap.Error(err))
	}
}
