package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aitoolhub/toolhub/internal/api"
	"github.com/aitoolhub/toolhub/internal/config"
	"github.com/aitoolhub/toolhub/internal/core"
	"github.com/aitoolhub/toolhub/internal/gateway"
	"github.com/aitoolhub/toolhub/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	if !cfg.EnvFileLoaded {
		appLog.Info("No .env file found, relying on environment variables")
	}
	if !cfg.GeminiConfigured() {
		appLog.Warn("GEMINI_API_KEY is not set; tool endpoints will answer 503")
	}

	// The genai client itself is created on the first model call.
	gemini := gateway.NewGeminiClient(cfg.GeminiAPIKey, appLog)
	defer gemini.Close()

	generator := gateway.WithRetry(gemini, gateway.RetryPolicy{
		Timeout:    cfg.ModelTimeout,
		MaxRetries: cfg.ModelMaxRetries,
		Backoff:    cfg.ModelRetryBackoff,
	}, appLog)

	tools := core.NewToolService(generator, core.Config{
		Model:      cfg.GeminiModel,
		Configured: cfg.GeminiConfigured(),
	}, appLog)

	apiHandler := api.NewAPIHandler(tools, appLog)
	router := api.NewRouter(apiHandler, appLog, cfg.StaticDir)

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	// WriteTimeout leaves room for every retry of a slow model call.
	writeTimeout := cfg.ModelTimeout*time.Duration(cfg.ModelMaxRetries+1) + 15*time.Second
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		appLog.Info("Starting server", "addr", serverAddr, "model", cfg.GeminiModel)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Could not listen", "addr", serverAddr, "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("Server forced to shutdown", "error", err)
		return
	}

	appLog.Info("Server exiting gracefully")
}
