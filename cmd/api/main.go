package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/llm"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/mail"
	"portfolio-backend/pkg/redis"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form relay and AI chat proxy for the portfolio site.
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend",
		"port", cfg.Port, "env", cfg.Environment)

	// 3. Setup Redis (optional, rate limiting only)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mail Dispatcher
	dispatcher := mail.NewDispatcher(cfg, logger.Log)

	// 5. Setup Completion Client
	llmClient := llm.New(llm.Config{APIKey: cfg.OpenAIAPIKey, Model: cfg.OpenAIModel})
	if !llmClient.IsConfigured() {
		logger.Log.Warn("OPENAI_API_KEY not set - chat relay will be unavailable")
	}

	// 6. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(dispatcher)
	chatUC := usecase.NewChatUsecase(llmClient, validate)
	healthUC := usecase.NewHealthUsecase()

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ChatUC:    chatUC,
		HealthUC:  healthUC,
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
