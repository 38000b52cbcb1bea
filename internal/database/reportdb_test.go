package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bountyy/localtap/internal/model"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *ReportDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// sampleReport builds a report with the given open ports.
func sampleReport(open ...int) model.ScanReport {
	return model.ScanReport{
		Open:       open,
		Total:      246,
		UserAgent:  "test-agent/1.0",
		Timestamp:  time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		RemoteAddr: "127.0.0.1",
		Country:    "unknown",
	}
}

// TestOpen tests database opening and creation.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dbDir, dbFileName)); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
	})

	t.Run("CreateIfNotExists=false returns error when database does not exist", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.CreateIfNotExists = false

		if _, err := Open(filepath.Join(t.TempDir(), "missing"), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("reopens existing database", func(t *testing.T) {
		t.Parallel()

		dbDir := t.TempDir()

		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		if err := db.Append(context.Background(), sampleReport(3000)); err != nil {
			t.Fatalf("failed to append report: %v", err)
		}
		if err := db.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}

		opts := DefaultOptions()
		opts.CreateIfNotExists = false

		db, err = Open(dbDir, opts)
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer db.Close()

		count, err := db.Count(context.Background())
		if err != nil {
			t.Fatalf("failed to count reports: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 report after reopen, got %d", count)
		}
	})
}

// TestAppendAndList tests the round trip through the report log.
func TestAppendAndList(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	first := sampleReport(3000, 11434)
	second := sampleReport(6379)
	second.Country = "NL"

	if err := db.Append(ctx, first); err != nil {
		t.Fatalf("failed to append first report: %v", err)
	}
	if err := db.Append(ctx, second); err != nil {
		t.Fatalf("failed to append second report: %v", err)
	}

	reports, err := db.List(ctx)
	if err != nil {
		t.Fatalf("failed to list reports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	// Append order is preserved, oldest first.
	if len(reports[0].Open) != 2 || reports[0].Open[0] != 3000 || reports[0].Open[1] != 11434 {
		t.Errorf("first report open ports = %v, want [3000 11434]", reports[0].Open)
	}
	if reports[1].Country != "NL" {
		t.Errorf("second report country = %q, want NL", reports[1].Country)
	}
	if !reports[0].Timestamp.Equal(first.Timestamp) {
		t.Errorf("timestamp round trip = %v, want %v", reports[0].Timestamp, first.Timestamp)
	}
	if reports[0].UserAgent != first.UserAgent {
		t.Errorf("user agent = %q, want %q", reports[0].UserAgent, first.UserAgent)
	}
}

// TestAppendEmptyOpenPorts tests that a report with no open ports
// survives the round trip as an empty, non-nil slice.
func TestAppendEmptyOpenPorts(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.Append(ctx, sampleReport()); err != nil {
		t.Fatalf("failed to append report: %v", err)
	}

	reports, err := db.List(ctx)
	if err != nil {
		t.Fatalf("failed to list reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if reports[0].Open == nil {
		t.Error("open ports should be an empty slice, not nil")
	}
	if len(reports[0].Open) != 0 {
		t.Errorf("expected no open ports, got %v", reports[0].Open)
	}
}

// TestRetentionEviction tests that the log stays capped and keeps the
// newest reports.
func TestRetentionEviction(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Retention = 3

	db, err := Open(t.TempDir(), opts)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	for port := 1; port <= 5; port++ {
		if err := db.Append(ctx, sampleReport(port)); err != nil {
			t.Fatalf("failed to append report %d: %v", port, err)
		}
	}

	reports, err := db.List(ctx)
	if err != nil {
		t.Fatalf("failed to list reports: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports after eviction, got %d", len(reports))
	}

	// Oldest two evicted; reports 3, 4, 5 remain in order.
	for i, want := range []int{3, 4, 5} {
		if reports[i].Open[0] != want {
			t.Errorf("reports[%d] open = %v, want [%d]", i, reports[i].Open, want)
		}
	}
}

// TestClear tests that clearing resets the log to empty.
func TestClear(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	for port := 1; port <= 4; port++ {
		if err := db.Append(ctx, sampleReport(port)); err != nil {
			t.Fatalf("failed to append report: %v", err)
		}
	}

	if err := db.Clear(ctx); err != nil {
		t.Fatalf("failed to clear reports: %v", err)
	}

	count, err := db.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count reports: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty log after clear, got %d reports", count)
	}
}
