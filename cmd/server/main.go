package main

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/alkime/cotola/internal/ai"
	"github.com/alkime/cotola/internal/config"
	"github.com/alkime/cotola/internal/content"
	"github.com/alkime/cotola/internal/logger"
	"github.com/alkime/cotola/internal/metrics"
	"github.com/alkime/cotola/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logger := logger.SetupLogger(cfg)

	// Log startup information
	logger.Info("Starting Cotola server",
		"env", cfg.Env,
		"port", cfg.Port,
		"ai_provider", cfg.AIProvider,
		"web_dir", cfg.WebDir,
	)

	client, err := ai.New(cfg.AIConfig())
	if err != nil {
		logger.Error("Failed to create AI client", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
	if cfg.APIKey() == "" {
		// Requests fail with a 500 until a key is configured.
		logger.Warn("No API key configured", "provider", cfg.AIProvider)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	svc := content.NewService(client, logger, m)
	srv := server.New(cfg, logger, svc, m, reg)

	if err := server.Run(srv); err != nil {
		logger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
