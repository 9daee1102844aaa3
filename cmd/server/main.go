// Package main is the entry point for the poker session tracker API server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NickyVHDP/pokertracker/internal/config"
	"github.com/NickyVHDP/pokertracker/internal/pkg/db"
	"github.com/NickyVHDP/pokertracker/internal/pkg/lock"
	"github.com/NickyVHDP/pokertracker/internal/repository"
	"github.com/NickyVHDP/pokertracker/internal/server"
	"github.com/NickyVHDP/pokertracker/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Str("driver", cfg.Storage.Driver).Msg("Configuration loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Select the storage backend
	var (
		store  repository.Store
		health server.HealthChecker
	)
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		dbPool, err := db.NewPool(ctx, &cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer dbPool.Close()

		if err := repository.Migrate(ctx, dbPool.Pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}

		store = repository.NewPostgresStore(dbPool.Pool)
		health = dbPool
	default:
		store = repository.NewMemoryStore()
	}

	// Initialize services
	sessionLock := lock.NewKeyLock()
	sessionService := service.NewSessionService(store, store, sessionLock)
	bankrollService := service.NewBankrollService(store, store)
	statsService := service.NewStatsService(store)

	// Seed default settings, keeping any existing values
	if err := bankrollService.EnsureDefaultSettings(ctx, cfg.Defaults.Settings()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed default settings")
	}

	srv := server.New(&server.Dependencies{
		Config:          cfg,
		SessionService:  sessionService,
		BankrollService: bankrollService,
		StatsService:    statsService,
		Health:          health,
	})

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errChan:
		if err != nil {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown did not complete cleanly")
		return
	}
	log.Info().Msg("Server stopped gracefully")
}
