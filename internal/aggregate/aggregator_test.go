package aggregate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bountyy/localtap/internal/model"
)

// failingStore simulates storage failures.
type failingStore struct{}

func (failingStore) Append(context.Context, model.ScanReport) error {
	return errors.New("disk full")
}

func (failingStore) List(context.Context) ([]model.ScanReport, error) {
	return nil, errors.New("disk full")
}

func (failingStore) Clear(context.Context) error {
	return errors.New("disk full")
}

// TestSubmitAndReports tests the basic submit/read round trip.
func TestSubmitAndReports(t *testing.T) {
	t.Parallel()

	a := NewAggregator(NewMemoryStore(10), nil)
	ctx := context.Background()

	report := model.ScanReport{
		Open:       []int{3000, 11434},
		Total:      246,
		UserAgent:  "test-agent/1.0",
		Timestamp:  time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		RemoteAddr: "127.0.0.1",
		Country:    "DE",
	}
	if err := a.Submit(ctx, report); err != nil {
		t.Fatalf("failed to submit: %v", err)
	}

	got, err := a.Reports(ctx)
	if err != nil {
		t.Fatalf("failed to read reports: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 report, got %d", len(got))
	}
	if got[0].Country != "DE" || got[0].Total != 246 {
		t.Errorf("unexpected report: %+v", got[0])
	}
}

// TestSubmitNormalizes tests the safe-default repairs on malformed
// submissions.
func TestSubmitNormalizes(t *testing.T) {
	t.Parallel()

	a := NewAggregator(NewMemoryStore(10), nil)
	ctx := context.Background()

	report := model.ScanReport{
		Open:  []int{0, 3000, 70000, -5},
		Total: -3,
	}
	if err := a.Submit(ctx, report); err != nil {
		t.Fatalf("failed to submit: %v", err)
	}

	got, err := a.Reports(ctx)
	if err != nil {
		t.Fatalf("failed to read reports: %v", err)
	}

	if len(got[0].Open) != 1 || got[0].Open[0] != 3000 {
		t.Errorf("expected out-of-range ports dropped, got %v", got[0].Open)
	}
	if got[0].Total != 0 {
		t.Errorf("expected negative total clamped to 0, got %d", got[0].Total)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("expected missing timestamp to be filled in")
	}
	if got[0].Country != "unknown" {
		t.Errorf("expected country default, got %q", got[0].Country)
	}
}

// TestReportsNeverNil tests that an empty log reads as an empty slice.
func TestReportsNeverNil(t *testing.T) {
	t.Parallel()

	a := NewAggregator(NewMemoryStore(10), nil)

	got, err := a.Reports(context.Background())
	if err != nil {
		t.Fatalf("failed to read reports: %v", err)
	}
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
}

// TestFrequency tests the derived frequency distribution.
func TestFrequency(t *testing.T) {
	t.Parallel()

	a := NewAggregator(NewMemoryStore(10), nil)
	ctx := context.Background()

	for _, open := range [][]int{
		{3000, 6379},
		{3000},
		{3000, 11434},
		{6379},
	} {
		if err := a.Submit(ctx, model.ScanReport{Open: open, Total: 246}); err != nil {
			t.Fatalf("failed to submit: %v", err)
		}
	}

	freq, err := a.Frequency(ctx)
	if err != nil {
		t.Fatalf("failed to compute frequency: %v", err)
	}

	if freq.TotalReports != 4 {
		t.Errorf("expected 4 reports covered, got %d", freq.TotalReports)
	}
	if len(freq.Entries) != 3 {
		t.Fatalf("expected 3 ports, got %d", len(freq.Entries))
	}

	// Ordered by count descending: 3000 (3), 6379 (2), 11434 (1).
	want := []model.FrequencyEntry{
		{Port: 3000, Count: 3, Fraction: 0.75},
		{Port: 6379, Count: 2, Fraction: 0.5},
		{Port: 11434, Count: 1, Fraction: 0.25},
	}
	for i := range want {
		if freq.Entries[i] != want[i] {
			t.Errorf("entry[%d] = %+v, want %+v", i, freq.Entries[i], want[i])
		}
	}
}

// TestClear tests the submit/clear/read cycle.
func TestClear(t *testing.T) {
	t.Parallel()

	a := NewAggregator(NewMemoryStore(10), nil)
	ctx := context.Background()

	if err := a.Submit(ctx, model.ScanReport{Open: []int{3000}, Total: 246}); err != nil {
		t.Fatalf("failed to submit: %v", err)
	}
	if err := a.Clear(ctx); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}

	got, err := a.Reports(ctx)
	if err != nil {
		t.Fatalf("failed to read reports: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty log after clear, got %d reports", len(got))
	}

	freq, err := a.Frequency(ctx)
	if err != nil {
		t.Fatalf("failed to compute frequency: %v", err)
	}
	if freq.TotalReports != 0 || len(freq.Entries) != 0 {
		t.Errorf("expected empty frequency report, got %+v", freq)
	}
}

// TestStorageFailure tests that store errors surface to the caller.
func TestStorageFailure(t *testing.T) {
	t.Parallel()

	a := NewAggregator(failingStore{}, nil)
	ctx := context.Background()

	if err := a.Submit(ctx, model.ScanReport{}); err == nil {
		t.Error("expected submit error")
	}
	if _, err := a.Reports(ctx); err == nil {
		t.Error("expected reports error")
	}
	if _, err := a.Frequency(ctx); err == nil {
		t.Error("expected frequency error")
	}
	if err := a.Clear(ctx); err == nil {
		t.Error("expected clear error")
	}
}

// TestMemoryStoreRetention tests the in-memory cap.
func TestMemoryStoreRetention(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(2)
	ctx := context.Background()

	for port := 1; port <= 4; port++ {
		if err := s.Append(ctx, model.ScanReport{Open: []int{port}}); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(got))
	}
	if got[0].Open[0] != 3 || got[1].Open[0] != 4 {
		t.Errorf("expected newest reports kept, got %v and %v", got[0].Open, got[1].Open)
	}
}

// TestMemoryStoreListIsolation tests that mutating a listed report
// cannot reach back into the store.
func TestMemoryStoreListIsolation(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(10)
	ctx := context.Background()

	if err := s.Append(ctx, model.ScanReport{Open: []int{3000, 6379}}); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	first, err := s.List(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	first[0].Open[0] = 9999

	second, err := s.List(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if second[0].Open[0] != 3000 {
		t.Errorf("stored report mutated through listed copy: %v", second[0].Open)
	}
}
