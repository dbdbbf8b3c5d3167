package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/hera/internal/auth"
	"github.com/UnknownOlympus/hera/internal/config"
	"github.com/UnknownOlympus/hera/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hera/internal/metrics"
	"github.com/UnknownOlympus/hera/internal/repository"
	"github.com/UnknownOlympus/hera/internal/server"
	"github.com/UnknownOlympus/hera/internal/services/accounts"
	"github.com/UnknownOlympus/hera/internal/services/records"
	"github.com/UnknownOlympus/hera/internal/services/staff"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	userRepo := repository.NewUserRepository(dtb, appMetrics)
	recordsRepo := repository.NewRecordsRepository(dtb, appMetrics)

	tokener := auth.NewTokener(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	accountsService := accounts.NewService(logger, userRepo, tokener, appMetrics)
	staffService := staff.NewService(logger, employeeRepo, cfg.Auth.DefaultPassword)
	recordsService := records.NewService(logger, recordsRepo)

	srv := server.New(server.Options{
		Log:        logger,
		Env:        cfg.Env,
		CORSOrigin: cfg.CORSOrigin,
		Tokener:    tokener,
		Metrics:    appMetrics,
		Registry:   reg,
		Health:     server.NewHealthChecker(dtb, logger),
		Accounts:   accountsService,
		Staff:      staffService,
		Records:    recordsService,
	})

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	if err = srv.Run(ctx, cfg.HTTPAddress); err != nil {
		logger.ErrorContext(ctx, "HTTP server failed", sl.Err(err))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}
