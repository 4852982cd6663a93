package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"group-reviews/api"
	"group-reviews/internal/cache"
	"group-reviews/internal/config"
	"group-reviews/internal/database"
	"group-reviews/internal/domain"
	"group-reviews/internal/handler"
	"group-reviews/internal/metrics"
	"group-reviews/internal/repository"
	"group-reviews/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	ctx := context.Background()

	// База данных (pgx pool + goose миграции)
	pool, err := database.NewPostgresPool(ctx, cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer pool.Close()
	logger.Info("Database connected")

	// Кэш статистики (опционально)
	var statsCache domain.StatsCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewStatsCacheWithURL(cfg.RedisURL, cfg.StatsCacheTTL)
		if err != nil {
			logger.Fatalf("Redis config failed: %v", err)
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			logger.Warnf("Redis unavailable, stats cache will degrade to database reads: %v", err)
		} else {
			logger.WithField("ttl", cfg.StatsCacheTTL).Info("Stats cache connected")
		}
		statsCache = redisCache
	}

	// Репозитории
	groupRepo := repository.NewGroupRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	// Use Cases
	statsUC := usecase.NewStatsUseCase(statsRepo, statsCache, logger)
	groupUC := usecase.NewGroupUseCase(groupRepo, statsUC)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, groupRepo, statsUC)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())
	e.Use(handler.LoggingMiddleware(logger))

	apiHandler := handler.NewAPIHandler(groupUC, reviewUC, statsUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		if err := pool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", metrics.Handler())

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
