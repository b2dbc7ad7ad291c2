package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobcrawler-backend/config"
	_ "go-jobcrawler-backend/docs" // Important for Swagger
	v1 "go-jobcrawler-backend/internal/delivery/http/v1"
	"go-jobcrawler-backend/internal/domain"
	"go-jobcrawler-backend/internal/repository/postgres"
	"go-jobcrawler-backend/internal/usecase"
	"go-jobcrawler-backend/pkg/database"
	"go-jobcrawler-backend/pkg/logger"
	"go-jobcrawler-backend/pkg/redis"
	"go-jobcrawler-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Crawler Configuration API
// @version         1.0
// @description     Configuration and user-profile API for the job crawler.
// @host            localhost:5001
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job crawler API", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.EnableUserProfiles {
		if err := postgres.EnsureSchema(context.Background(), dbPool); err != nil {
			logger.Log.Error("Failed to ensure database schema", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Redis (optional, rate limiting counters)
	var redisPinger usecase.DependencyPinger
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	} else {
		defer redis.Close()
		redisPinger = usecase.PingerFunc(redis.HealthCheck)
	}

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	global := domain.GlobalConfig{
		PreferredLocations: cfg.PreferredLocations,
		MinSalary:          cfg.MinSalary,
		MaxSalary:          cfg.MaxSalary,
		EmailRecipient:     cfg.EmailRecipient,
	}

	healthUC := usecase.NewHealthUsecase(dbPool, redisPinger)
	configUC := usecase.NewConfigUsecase(profileRepo, global, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		HealthUC:  healthUC,
		ConfigUC:  configUC,
		ProfileUC: profileUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
