package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bountyy/localtap/internal/catalog"
	"github.com/bountyy/localtap/internal/config"
	"github.com/bountyy/localtap/internal/log"
	"github.com/bountyy/localtap/internal/model"
	"github.com/bountyy/localtap/internal/probe"
	"github.com/bountyy/localtap/internal/report"
	"github.com/bountyy/localtap/internal/scan"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan loopback for reachable local services",
		Long: `Scan probes the conventional ports of known local services and reports
which ones are reachable on this machine.

The scan first calibrates by probing ports that are certainly closed, then
classifies every catalog port by comparing its connection timing against
the calibrated baseline. Nothing is sent to any service; probes connect
and immediately disconnect.

Examples:
  # Scan with the built-in catalog
  localtap scan

  # Output a Markdown report to a file
  localtap scan --markdown -o report.md

  # Extend the catalog with custom targets
  localtap scan -c myconfig.yaml

  # Submit anonymized results to an aggregation service
  localtap scan --submit http://127.0.0.1:8787/api/report

Configuration file (.localtap) example:
  targets:
    - port: 9999
      identity: Internal Dashboard
      auth: session
      rebind: likely
      category: infra`,
		Args: cobra.NoArgs,
		RunE: runScanCmd,
	}

	// Probe behavior flags
	cmd.Flags().StringP("host", "H", config.DefaultHost,
		"Address to probe (an interface of this machine)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultProbeTimeout,
		"Timeout for each port probe")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent probes")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Catalog override file path (default: .localtap in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Aggregation flags
	cmd.Flags().StringP("submit", "s", "",
		"Aggregation service URL to POST anonymized results to")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildScanConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildScanConfig creates a Config from cobra command flags.
func buildScanConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.Host, err = cmd.Flags().GetString("host")
	if err != nil {
		return nil, err
	}

	cfg.ProbeTimeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load catalog overrides from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently scan the built-in catalog.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.CatalogFile, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.SubmitURL, err = cmd.Flags().GetString("submit")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildCatalog returns the effective scan catalog.
func buildCatalog(cfg *config.Config) *catalog.Catalog {
	if cfg.CatalogFile != nil {
		return cfg.CatalogFile.Catalog()
	}
	return catalog.Default()
}

// runScan executes the scan.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	cat := buildCatalog(cfg)

	logger.Info("starting scan",
		"targets", cat.Len(),
		"batchSize", cfg.BatchSize,
		"probeTimeout", cfg.ProbeTimeout,
	)

	prober := probe.NewTCPProber(probe.WithHost(cfg.Host))

	orchestrator := scan.NewOrchestrator(cat, prober,
		scan.WithBatchSize(cfg.BatchSize),
		scan.WithProbeTimeout(cfg.ProbeTimeout),
		scan.WithCalibrator(scan.NewCalibrator(prober,
			scan.WithCalibrationTimeout(cfg.ProbeTimeout),
			scan.WithFallbackBaseline(cfg.FallbackBaseline),
			scan.WithCalibratorLogger(logger),
		)),
		scan.WithProgressFunc(func(scanned, total int) {
			fmt.Fprintf(os.Stderr, "\rProbing %d/%d ports...", scanned, total)
			if scanned == total {
				fmt.Fprintln(os.Stderr)
			}
		}),
		scan.WithLogger(logger),
	)

	// An interrupt stops batch dispatch; in-flight probes still finish
	// and the partial verdict set is reported.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, stopping scan...")
		orchestrator.Stop()
	}()

	fmt.Printf("Scanning %d catalog ports on %s...\n", cat.Len(), cfg.Host)
	startTime := time.Now()

	run, err := orchestrator.Run(ctx)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	fmt.Printf("Scan completed in %s\n", time.Since(startTime).Round(time.Millisecond))

	summary := report.NewSummary(run, cat)
	if err := outputReport(cfg, summary); err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	if cfg.SubmitURL != "" {
		if err := submitReport(ctx, cfg.SubmitURL, run, logger); err != nil {
			// Submission is best effort; the local report already exists.
			logger.Error("result submission failed", "error", err)
		}
	}

	return nil
}

// outputReport outputs the scan summary in the requested format.
func outputReport(cfg *config.Config, summary *report.Summary) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports describe this machine's exposed services, so keep
		// them readable by the owner only.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output,
			report.WithPrettyPrint(),
			report.WithVersion(getVersion()),
		)
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(summary)
	return err
}

// submitReport POSTs the anonymized result set to an aggregation service.
// Only open ports and the catalog size leave the machine; the service
// derives submitter metadata itself.
func submitReport(ctx context.Context, url string, run *model.ScanRun, logger *slog.Logger) error {
	body, err := json.Marshal(map[string]any{
		"open":  run.OpenPorts(),
		"total": run.Total(),
		"ua":    "localtap/" + getVersion(),
		"ts":    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit results: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort cleanup

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("aggregation service returned %s", resp.Status)
	}

	logger.Info("results submitted", "open", run.CountByState(model.StateOpen), "total", run.Total())
	return nil
}
