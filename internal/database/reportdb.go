package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/bountyy/localtap/internal/model"
)

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "localtap.db"

// DefaultRetention is the maximum number of reports kept in the log.
const DefaultRetention = 1000

// ReportDB provides SQLite-based storage for the submitted report log.
//
// Design decision: One database file for the whole service rather than
// per-day or per-source files. The log is small by construction (the
// retention cap bounds it), so a single file keeps frequency queries
// and backup trivial.
type ReportDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// retention caps the number of stored reports.
	retention int
}

// Options configures ReportDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool

	// Retention caps the number of stored reports. Zero or negative
	// falls back to DefaultRetention.
	Retention int
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
		Retention:         DefaultRetention,
	}
}

// Open opens or creates a ReportDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ReportDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; the report log is write-heavy,
	// so a single connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	retention := opts.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}

	rdb := &ReportDB{
		db:        db,
		dbPath:    dbPath,
		retention: retention,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *ReportDB) Close() error {
	return rdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (rdb *ReportDB) createTables() error {
	schema := `
	-- Scan reports store one submitted result set each
	CREATE TABLE IF NOT EXISTS scan_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts TEXT NOT NULL,
		user_agent TEXT,
		remote_addr TEXT,
		country TEXT,
		total INTEGER NOT NULL,
		open_ports TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scan_reports_ts ON scan_reports(ts);
	`

	if _, err := rdb.db.ExecContext(context.Background(), schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Append stores a report and evicts the oldest entries beyond the
// retention cap. Both statements run in one transaction so a crash
// between them cannot leave the log over the cap.
func (rdb *ReportDB) Append(ctx context.Context, report model.ScanReport) error {
	openJSON, err := json.Marshal(report.Open)
	if err != nil {
		return fmt.Errorf("failed to serialize open ports: %w", err)
	}

	tx, err := rdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	insert := `
	INSERT INTO scan_reports (ts, user_agent, remote_addr, country, total, open_ports)
	VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, insert,
		report.Timestamp.UTC().Format(time.RFC3339Nano),
		report.UserAgent,
		report.RemoteAddr,
		report.Country,
		report.Total,
		string(openJSON),
	); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	evict := `
	DELETE FROM scan_reports
	WHERE id NOT IN (SELECT id FROM scan_reports ORDER BY id DESC LIMIT ?)
	`
	if _, err := tx.ExecContext(ctx, evict, rdb.retention); err != nil {
		return fmt.Errorf("failed to evict old reports: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}
	return nil
}

// List returns the full report log in append order, oldest first.
func (rdb *ReportDB) List(ctx context.Context) ([]model.ScanReport, error) {
	query := `
	SELECT ts, user_agent, remote_addr, country, total, open_ports
	FROM scan_reports ORDER BY id ASC
	`

	rows, err := rdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var reports []model.ScanReport
	for rows.Next() {
		var (
			report   model.ScanReport
			ts       string
			openJSON string
		)
		if err := rows.Scan(&ts, &report.UserAgent, &report.RemoteAddr, &report.Country, &report.Total, &openJSON); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}

		report.Timestamp = parseTimestamp(ts)
		if err := json.Unmarshal([]byte(openJSON), &report.Open); err != nil {
			return nil, fmt.Errorf("failed to parse open ports: %w", err)
		}
		if report.Open == nil {
			report.Open = []int{}
		}

		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// Count returns the number of stored reports.
func (rdb *ReportDB) Count(ctx context.Context) (int, error) {
	var count int
	if err := rdb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scan_reports").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// Clear deletes every stored report.
func (rdb *ReportDB) Clear(ctx context.Context) error {
	if _, err := rdb.db.ExecContext(ctx, "DELETE FROM scan_reports"); err != nil {
		return fmt.Errorf("failed to clear reports: %w", err)
	}
	return nil
}

// parseTimestamp parses a stored timestamp, falling back to the zero
// time on malformed values rather than failing the whole read.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
