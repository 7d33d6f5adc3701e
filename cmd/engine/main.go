package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sitesafe-engine-go/internal/api"
	"sitesafe-engine-go/internal/config"
	"sitesafe-engine-go/internal/logging"
)

func main() {
	// Setup structured logging
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg := config.Load()

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Optionally tee logs into the embedded Logdy web viewer
	if cfg.LogdyEnabled {
		logdyOut, url, err := logging.StartLogdy(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to start Logdy, console logging only")
		} else {
			console := zerolog.ConsoleWriter{Out: os.Stderr}
			log.Logger = log.Output(io.MultiWriter(console, logdyOut))
			log.Info().Str("url", url).Msg("Log viewer enabled")
		}
	}

	log.Info().
		Str("engine_id", cfg.EngineID).
		Str("version", cfg.Version).
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Int("feed_capacity", cfg.FeedCapacity).
		Bool("nats_enabled", cfg.NatsEnabled).
		Msg("Starting SiteSafe engine")

	// Create and start server
	server, err := api.NewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	} else {
		log.Info().Msg("Server shutdown complete")
	}
}
