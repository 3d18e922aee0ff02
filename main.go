package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/stashlop/sillora/internal/auth"
	"github.com/stashlop/sillora/internal/config"
	"github.com/stashlop/sillora/internal/events"
	"github.com/stashlop/sillora/internal/handlers"
	"github.com/stashlop/sillora/internal/repositories/postgres"
	"github.com/stashlop/sillora/internal/services"
	"github.com/stashlop/sillora/internal/utils"
	"github.com/stashlop/sillora/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := utils.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("REDIS_URL not set, caching disabled")
	}

	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{
		DB:          db,
		RedisClient: redisClient,
	})
	if err := repoManager.Initialize(); err != nil {
		logger.Error("failed to initialize repositories", "error", err)
		os.Exit(1)
	}

	publisher, err := events.NewPublisher(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize event publisher", "error", err)
		os.Exit(1)
	}

	jwter := auth.NewJWTer(cfg.JWT)
	serviceManager := services.NewServiceManager(services.ServiceManagerConfig{
		Repo:      repoManager.GetRepository(),
		DB:        db,
		JWTer:     jwter,
		Publisher: publisher,
		Logger:    logger,
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	handlers.SetupMiddleware(router, logger)

	handlerManager := handlers.NewHandlerManager(serviceManager, jwter, repoManager, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("publisher shutdown failed", "error", err)
	}
	if err := repoManager.Shutdown(ctx); err != nil {
		logger.Error("repository shutdown failed", "error", err)
	}
	logger.Info("shutdown complete")
}
