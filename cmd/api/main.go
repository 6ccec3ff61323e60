package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/config"
	_ "github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/docs" // Important for Swagger
	v1 "github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/delivery/http/v1"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/repository/postgres"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/usecase"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/auth"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/database"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/logger"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/redis"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/storage"
	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/pkg/validation"
)

// @title           Veridia Hiring Platform API
// @version         1.0
// @description     Backend for the Veridia careers portal using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting hiring platform backend", "port", cfg.Port)

	// 3. Custom binding validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 5. Setup Redis (rate limiting; middleware falls back to memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting will use in-memory fallback", "error", err)
	}
	defer func() { _ = redis.Close() }()

	// 6. Setup Document Storage
	documents, err := storage.NewS3Store(context.Background(), storage.S3Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
		KeyPrefix:       cfg.S3KeyPrefix,
	})
	if err != nil {
		logger.Log.Error("Failed to configure document storage", "error", err)
		os.Exit(1)
	}

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 8. Setup Token Service
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenLifetime)

	// 9. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, documents)

	// 10. Seed default postings on an empty jobs table
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := jobUC.SeedDefaultJobs(seedCtx); err != nil {
		logger.Log.Warn("Failed to seed default job postings", "error", err)
	}
	seedCancel()

	// 11. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 12. Start Server
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
