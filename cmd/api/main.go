package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/casedesk/casedesk/internal/api"
	"github.com/casedesk/casedesk/internal/infrastructure/config"
	"github.com/casedesk/casedesk/internal/infrastructure/db/postgres"
	"github.com/casedesk/casedesk/pkg/logger"
)

func main() {
	seed := flag.Bool("seed", false, "Insert sample data after migrations (skipped when users already exist)")
	flag.Parse()

	bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg := config.Load(bootstrap)
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := postgres.Open(postgres.Config{
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.WaitReady(ctx, db, cfg.Database.WaitAttempts, cfg.Database.WaitBackoff, log); err != nil {
		log.Fatal().Err(err).Msg("database never became ready")
	}
	if err := postgres.Migrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	if *seed {
		if err := postgres.Seed(ctx, db, log); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	e := api.NewRouter(db, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
