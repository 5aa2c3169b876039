package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/keodevspace/CloudProject/internal/adapter/http/handler"
	"github.com/keodevspace/CloudProject/internal/adapter/http/router"
	"github.com/keodevspace/CloudProject/internal/domain/service"
	"github.com/keodevspace/CloudProject/internal/infrastructure/config"
	"github.com/keodevspace/CloudProject/internal/infrastructure/logger"
	"github.com/keodevspace/CloudProject/internal/infrastructure/metrics"
	"github.com/keodevspace/CloudProject/internal/infrastructure/store"
	"github.com/keodevspace/CloudProject/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Initialize audit store
	ctx := context.Background()
	auditStore, err := store.New(ctx, cfg, m, log)
	if err != nil {
		log.Error("Failed to initialize store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	log.Info("Audit store ready",
		zap.String("driver", auditStore.Driver),
		zap.Duration("write_timeout", cfg.Store.WriteTimeout),
	)

	// Wire usecase
	inferenceUC := usecase.NewInferenceUsecase(service.NewRiskClassifier(), auditStore.Repository, m, log)

	// Setup router
	r := router.Setup(router.Dependencies{
		InferenceUsecase: inferenceUC,
		HealthChecks:     map[string]handler.Checker{"store": auditStore},
		Gatherer:         reg,
		Logger:           log,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  2 * cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
	case err, ok := <-serveErr:
		if ok {
			log.Error("Server failed", zap.Error(err))
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close store connections
	if err := auditStore.Close(); err != nil {
		log.Warn("Failed to close store", zap.Error(err))
	}

	log.Info("Server exited")
	return runErr
}
