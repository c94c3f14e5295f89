// Package main is the entrypoint for the store catalog API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/storecore/catalog-api/internal/api"
	"github.com/storecore/catalog-api/internal/infrastructure/config"
	postgresdb "github.com/storecore/catalog-api/internal/infrastructure/db/postgres"
	redisdb "github.com/storecore/catalog-api/internal/infrastructure/db/redis"
	"github.com/storecore/catalog-api/migrations"
	"github.com/storecore/catalog-api/pkg/logger"

	_ "github.com/storecore/catalog-api/docs" // swagger spec registration
)

const shutdownTimeout = 10 * time.Second

// @title           Store Management API
// @version         1.0
// @description     Authenticated product catalog with idempotent mutations.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgresdb.Connect(ctx, postgresdb.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to postgres")
		os.Exit(1)
	}
	defer db.Close()
	log.Info().Msg("connected to postgres")

	if err := migrations.Migrate(db); err != nil {
		log.Error().Err(err).Msg("failed to apply migrations")
		os.Exit(1)
	}

	// Redis only accelerates the idempotency fast path; the service stays up
	// without it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without seen-key cache")
		rdb = nil
	} else {
		defer rdb.Close()
		log.Info().Msg("connected to redis")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
