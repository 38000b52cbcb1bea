package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bountyy/localtap/internal/aggregate"
	"github.com/bountyy/localtap/internal/config"
	"github.com/bountyy/localtap/internal/database"
	"github.com/bountyy/localtap/internal/log"
	"github.com/bountyy/localtap/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the report aggregation service",
		Long: `Serve runs the HTTP aggregation service that collects anonymized scan
reports and exposes frequency statistics over them.

Endpoints:
  POST /api/report     submit one scan report
  GET  /api/results    full report log, oldest first
  GET  /api/frequency  per-port open frequencies
  GET  /api/targets    the service catalog
  GET  /api/clear      empty the report log (POST works too)
  GET  /healthz        liveness probe

Examples:
  # Serve with the SQLite store in the XDG data directory
  localtap serve

  # Serve on a different address with in-memory storage
  localtap serve --addr 127.0.0.1:9090 --memory`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultListenAddr,
		"Listen address for the HTTP API")
	cmd.Flags().String("db-dir", "",
		"Directory for the SQLite database (default: XDG data directory)")
	cmd.Flags().Bool("memory", false,
		"Keep reports in memory instead of SQLite")
	cmd.Flags().IntP("retention", "r", config.DefaultRetention,
		"Maximum number of reports to keep")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	inMemory, err := cmd.Flags().GetBool("memory")
	if err != nil {
		return err
	}

	return runServe(cmd.Context(), cfg, inMemory, logger)
}

// buildServeConfig creates a Config from cobra command flags.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ListenAddr, err = cmd.Flags().GetString("addr")
	if err != nil {
		return nil, err
	}

	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if cfg.DBDir == "" {
		cfg.DBDir = config.XDGDataDir()
	}

	cfg.Retention, err = cmd.Flags().GetInt("retention")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildStore opens the report store.
func buildStore(cfg *config.Config, inMemory bool, logger *slog.Logger) (aggregate.Store, func(), error) {
	if inMemory {
		logger.Info("using in-memory report store", "retention", cfg.Retention)
		return aggregate.NewMemoryStore(cfg.Retention), func() {}, nil
	}

	opts := database.DefaultOptions()
	opts.Retention = cfg.Retention

	db, err := database.Open(cfg.DBDir, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger.Info("database opened", "dir", cfg.DBDir, "retention", cfg.Retention)
	return db, func() { _ = db.Close() }, nil
}

// runServe runs the aggregation service until interrupted.
func runServe(ctx context.Context, cfg *config.Config, inMemory bool, logger *slog.Logger) error {
	store, closeStore, err := buildStore(cfg, inMemory, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	agg := aggregate.NewAggregator(store, logger)
	srv := server.New(agg, buildCatalog(cfg), logger)

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("aggregation service listening", "addr", cfg.ListenAddr)
		fmt.Printf("Aggregation service listening on %s\n", cfg.ListenAddr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("received shutdown signal, draining connections...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
