// Package main wires the travel planner API together: configuration, logger,
// database pool, migrations, and the HTTP server. No business logic here.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wanderplan/travel-planner-api/internal/api"
	"github.com/wanderplan/travel-planner-api/internal/auth"
	"github.com/wanderplan/travel-planner-api/internal/infrastructure/config"
	"github.com/wanderplan/travel-planner-api/internal/infrastructure/db/postgres"
	"github.com/wanderplan/travel-planner-api/pkg/logger"
)

// @title        Travel Planner API
// @version      1.0
// @description  CRUD backend for the travel planner: user accounts and trips.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet; write straight to stderr.
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Schema first: migrations are idempotent and must finish before the
	// pool starts serving traffic.
	if err := postgres.Migrate(ctx, cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("database connection established")

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())
	e := api.NewRouter(pool, issuer, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown: wait for a signal, then give in-flight requests a
	// bounded window to finish.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("server stopped")
}
