package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultHost is the address probed during scans. We use 127.0.0.1
	// instead of localhost to avoid DNS resolution overhead and
	// potential issues with IPv6 resolution on some systems.
	DefaultHost = "127.0.0.1"

	// DefaultProbeTimeout bounds each connection attempt. Loopback
	// connections normally resolve in microseconds to low milliseconds;
	// 1.5 seconds is generous enough that only a genuinely filtered or
	// hung attempt times out.
	DefaultProbeTimeout = 1500 * time.Millisecond

	// DefaultBatchSize of 12 concurrent probes balances scan speed with
	// resource usage. Higher values may overwhelm the local network
	// stack or trip platform-level connection rate limiting, which
	// would distort the timing measurements the classifier depends on.
	DefaultBatchSize = 12

	// DefaultFallbackBaseline is assumed when calibration cannot
	// measure a baseline (every calibration probe timed out).
	DefaultFallbackBaseline = 50 * time.Millisecond

	// DefaultListenAddr is where the aggregation service listens.
	// Bound to loopback because the service is meant to sit behind a
	// fronting proxy that supplies the country header.
	DefaultListenAddr = "127.0.0.1:8787"

	// DefaultRetention caps the aggregation service's report log.
	// A thousand reports is plenty for frequency statistics while
	// keeping the store and its queries tiny.
	DefaultRetention = 1000

	// AppName is the application name used for XDG directory paths.
	AppName = "localtap"
)

// Config holds all configuration options for localtap.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ScanConfig, ServeConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Host is the address whose ports are probed. Almost always
	// 127.0.0.1; overriding it supports scanning another interface of
	// the same machine.
	Host string

	// ProbeTimeout is the timeout for each individual port probe.
	ProbeTimeout time.Duration

	// BatchSize is the number of concurrent probes per batch.
	BatchSize int

	// FallbackBaseline is used when calibration yields no samples.
	FallbackBaseline time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	Verbose bool

	// ConfigFilePath is the path to the catalog override file.
	// If empty, the tool searches for .localtap in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// CatalogFile holds catalog overrides loaded from the config file.
	// This is populated by LoadConfigFile and used when building the
	// scan catalog.
	CatalogFile *File

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// SubmitURL is the aggregation service to POST anonymized results
	// to after a scan. When empty, nothing is submitted.
	SubmitURL string

	// ListenAddr is the aggregation service's listen address.
	ListenAddr string

	// DBDir is the directory path for storing the SQLite database.
	// When empty, the aggregation service keeps reports in memory only.
	// Defaults to XDG data directory (~/.local/share/localtap on Linux).
	DBDir string

	// Retention caps the aggregation service's stored report count.
	Retention int
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, batch size).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Host:             DefaultHost,
		ProbeTimeout:     DefaultProbeTimeout,
		BatchSize:        DefaultBatchSize,
		FallbackBaseline: DefaultFallbackBaseline,
		ListenAddr:       DefaultListenAddr,
		Retention:        DefaultRetention,
	}
}

// XDGDataDir returns the XDG data directory for localtap.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/localtap
// On macOS: ~/Library/Application Support/localtap
// On Windows: %LOCALAPPDATA%\localtap
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for localtap.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/localtap
// On macOS: ~/Library/Application Support/localtap
// On Windows: %APPDATA%\localtap
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any scanning begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Timeout must be positive; zero timeout would cause immediate failures
	if c.ProbeTimeout <= 0 {
		return ErrInvalidProbeTimeout
	}

	// BatchSize must be positive; zero would mean no probing
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// FallbackBaseline must be positive; the classifier threshold
	// degenerates with a zero baseline
	if c.FallbackBaseline <= 0 {
		return ErrInvalidFallbackBaseline
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// Retention must be positive; the aggregation log needs a cap
	if c.Retention <= 0 {
		return ErrInvalidRetention
	}

	if c.ListenAddr == "" {
		return ErrNoListenAddr
	}

	return nil
}
