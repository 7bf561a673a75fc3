package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chinookhq/chinook-api/internal/logger"
	"github.com/chinookhq/chinook-api/pkg/api"
	"github.com/chinookhq/chinook-api/pkg/catalog/store"
	"github.com/chinookhq/chinook-api/pkg/config"
	"github.com/chinookhq/chinook-api/pkg/metrics"
	prommetrics "github.com/chinookhq/chinook-api/pkg/metrics/prometheus"
	"github.com/chinookhq/chinook-api/pkg/readiness"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Chinook API server",
	Long: `Start the Chinook API server in the foreground.

The server first waits for the database: it attempts to connect and load
the catalog schema up to DB_MAX_RETRIES times (default 30), waiting
DB_RETRY_DELAY seconds between attempts (default 2). If every attempt
fails the command exits with status 1 without serving any request.

A configuration file is optional. Without one, settings come from
environment variables and defaults.

Examples:
  # Start with default config location
  chinook start

  # Start with a custom config file
  chinook start --config /etc/chinook/config.yaml

  # Configure entirely from the environment
  DATABASE_URL=postgres://chinook:secret@db:5432/chinook DB_MAX_RETRIES=10 chinook start`,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return err
	}

	if err := InitLogger(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownObservability, err := initObservability(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownObservability(context.Background()); err != nil {
			logger.Error("Observability shutdown error", logger.Err(err))
		}
	}()

	logger.Info("Chinook Music API starting", "version", Version)
	logger.Info("Log level", "level", cfg.Logging.Level, "format", cfg.Logging.Format)
	logger.Info("Configuration loaded", "source", getConfigSource(GetConfigFile()))

	// Metrics come first so readiness attempts are observable while probing.
	metricsResult := config.InitializeMetrics(cfg)
	metricsDone := startMetricsServer(ctx, metricsResult.Server)

	st, gate, err := waitForStore(ctx, cfg, metricsResult.Readiness)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("Failed to close catalog store", logger.Err(err))
		}
	}()

	if sqlDB, err := st.DB().DB(); err == nil {
		if err := prommetrics.RegisterDBStats(sqlDB, "catalog"); err != nil {
			logger.Warn("Database pool metrics unavailable", logger.Err(err))
		}
	}

	apiServer := api.NewServer(cfg.Server, api.Dependencies{
		Store:       st,
		Gate:        gate,
		HTTPMetrics: metricsResult.HTTP,
	})

	err = serve(ctx, apiServer, cfg)
	cancel()

	if metricsDone != nil {
		if metricsErr := <-metricsDone; metricsErr != nil {
			logger.Error("Metrics server error", logger.Err(metricsErr))
		}
	}

	return err
}

// waitForStore runs the readiness gate to completion and returns the
// verified store. The error is fatal for the process.
func waitForStore(ctx context.Context, cfg *config.Config, m readiness.Metrics) (*store.GORMStore, *readiness.Gate, error) {
	connector := store.NewConnector(&cfg.Database)

	gate, err := readiness.New(connector, cfg.Readiness, readiness.WithMetrics(m))
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Waiting for database",
		logger.KeyDatabase, cfg.Database.Target(),
		logger.MaxAttempts(cfg.Readiness.MaxAttempts),
		logger.KeyRetryDelay, cfg.Readiness.RetryDelay.String())

	if err := gate.Run(ctx); err != nil {
		if store.IsSchemaMismatch(err) {
			logger.Error("Database is reachable but the Chinook schema is missing; run 'chinook migrate' or load the Chinook dataset")
		}
		return nil, nil, err
	}

	return connector.Store(), gate, nil
}

// serve runs the API server until a signal arrives or it fails, then
// drains in-flight requests within cfg.ShutdownTimeout.
func serve(ctx context.Context, apiServer *api.Server, cfg *config.Config) error {
	serverCtx, cancelServer := context.WithCancel(context.Background())
	defer cancelServer()

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- apiServer.Start(serverCtx)
	}()

	logger.Info("Server is running. Press Ctrl+C to stop.", "port", cfg.Server.Port)

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received, initiating graceful shutdown",
			"timeout", cfg.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		stopErr := apiServer.Stop(shutdownCtx)
		cancelServer()
		if err := errors.Join(stopErr, <-serverDone); err != nil {
			logger.Error("Server shutdown error", logger.Err(err))
			return err
		}
		logger.Info("Server stopped gracefully")
		return nil

	case err := <-serverDone:
		if err != nil {
			logger.Error("Server error", logger.Err(err))
			return err
		}
		logger.Info("Server stopped")
		return nil
	}
}

func startMetricsServer(ctx context.Context, srv *metrics.Server) <-chan error {
	if srv == nil {
		logger.Info("Metrics collection disabled")
		return nil
	}

	logger.Info("Metrics enabled", "port", srv.Port())
	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx)
	}()
	return done
}
