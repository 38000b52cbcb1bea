package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bountyy/localtap/internal/model"
)

// Aggregator accepts scan report submissions and serves aggregate
// views over the stored log.
//
// Design decision: Malformed submissions are repaired rather than
// rejected. A report with a missing port list or a nonsense total
// still carries signal (a scanner ran), so the aggregator normalizes
// it to safe defaults instead of turning the submitter away.
type Aggregator struct {
	// store holds the capped report log.
	store Store

	// logger is used for structured logging.
	logger *slog.Logger
}

// NewAggregator creates an Aggregator over the given store.
func NewAggregator(store Store, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{store: store, logger: logger}
}

// Submit normalizes and stores one report.
func (a *Aggregator) Submit(ctx context.Context, report model.ScanReport) error {
	report = normalize(report)

	if err := a.store.Append(ctx, report); err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}

	a.logger.Info("report accepted",
		"open", len(report.Open),
		"total", report.Total,
		"country", report.Country,
	)
	return nil
}

// Reports returns the stored log in append order, oldest first.
func (a *Aggregator) Reports(ctx context.Context) ([]model.ScanReport, error) {
	reports, err := a.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		reports = []model.ScanReport{}
	}
	return reports, nil
}

// Frequency recomputes the per-port open frequency distribution from
// the current log. It is never cached: two calls with no intervening
// writes return identical results, and a call racing an append sees
// either the old or the new log, both internally consistent.
func (a *Aggregator) Frequency(ctx context.Context) (*model.FrequencyReport, error) {
	reports, err := a.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return model.NewFrequencyReport(reports), nil
}

// Clear empties the report log.
func (a *Aggregator) Clear(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear reports: %w", err)
	}
	a.logger.Info("report log cleared")
	return nil
}

// normalize repairs a submission to safe defaults: a nil port list
// becomes empty, negative counts become zero, out-of-range ports are
// dropped, and a missing timestamp or country is filled in.
func normalize(report model.ScanReport) model.ScanReport {
	open := make([]int, 0, len(report.Open))
	for _, p := range report.Open {
		if p >= 1 && p <= 65535 {
			open = append(open, p)
		}
	}
	report.Open = open

	if report.Total < 0 {
		report.Total = 0
	}
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now().UTC()
	}
	if report.Country == "" {
		report.Country = "unknown"
	}
	return report
}
