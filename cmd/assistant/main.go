package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/cli"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/config"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/infrastructure/webhook"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/observability/logging"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/observability/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, "assistant-cli", cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backendMetrics := metrics.NewBackendMetrics("assistant-cli")
	if cfg.MetricsPort != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", backendMetrics.Handler())
			logger.Info("metrics listening", "port", cfg.MetricsPort)
			if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	backend := webhook.New(
		cfg.APIBaseURL,
		time.Duration(cfg.HTTPTimeoutSeconds)*time.Second,
		logger,
		backendMetrics,
	)

	app := cli.NewApp(cfg, logger, backend)
	app.Run(ctx)
}
