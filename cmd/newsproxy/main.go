package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/newsproxy/internal/application/proxy"
	"github.com/aescanero/newsproxy/internal/config"
	"github.com/aescanero/newsproxy/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/newsproxy/pkg/adapters/newsapi"
	httpapi "github.com/aescanero/newsproxy/pkg/api/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting news proxy",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Initialize adapters
	newsClient, err := newsapi.NewClient(&newsapi.Config{
		BaseURL:    cfg.NewsAPI.BaseURL,
		APIKey:     cfg.NewsAPI.APIKey,
		UserAgent:  cfg.NewsAPI.UserAgent,
		HTTPClient: &http.Client{Timeout: cfg.NewsAPI.Timeout},
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("failed to create NewsAPI client", zap.Error(err))
	}

	metricsCollector := prometheus.NewCollector()

	// Initialize application components
	proxyMgr := proxy.NewManager(newsClient, metricsCollector, logger)

	// Initialize API server
	httpServer := httpapi.NewServer(&httpapi.Config{
		Port:              cfg.HTTPPort,
		ReadHeaderTimeout: cfg.Timeouts.ReadHeaderTimeout,
		Proxy:             proxyMgr,
		Metrics:           metricsCollector,
		Logger:            logger,
	})

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("news proxy started",
		zap.Int("http_port", cfg.HTTPPort),
		zap.String("upstream", cfg.NewsAPI.BaseURL),
		zap.Duration("upstream_timeout", cfg.NewsAPI.Timeout))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("news proxy shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
