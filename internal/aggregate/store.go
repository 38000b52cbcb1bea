package aggregate

import (
	"context"
	"sync"

	"github.com/bountyy/localtap/internal/model"
)

// Store is the persistence contract for the report log. Implementations
// must keep append order and enforce their own retention cap.
type Store interface {
	// Append adds a report to the log, evicting the oldest entry if the
	// log is at capacity.
	Append(ctx context.Context, report model.ScanReport) error

	// List returns the full log in append order, oldest first.
	List(ctx context.Context) ([]model.ScanReport, error)

	// Clear empties the log.
	Clear(ctx context.Context) error
}

// MemoryStore is an in-memory Store with a fixed retention cap. It
// backs tests and ephemeral deployments where no database file is
// wanted.
type MemoryStore struct {
	mu        sync.RWMutex
	reports   []model.ScanReport
	retention int
}

// NewMemoryStore creates a MemoryStore keeping at most retention
// reports. Zero or negative retention falls back to 1000.
func NewMemoryStore(retention int) *MemoryStore {
	if retention <= 0 {
		retention = 1000
	}
	return &MemoryStore{retention: retention}
}

// Append adds a report, evicting the oldest beyond the cap.
func (s *MemoryStore) Append(_ context.Context, report model.ScanReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = append(s.reports, report)
	if len(s.reports) > s.retention {
		s.reports = s.reports[len(s.reports)-s.retention:]
	}
	return nil
}

// List returns a copy of the log; callers may mutate the returned
// reports freely. The per-report port slices are copied too, so no
// backing array is shared with the store.
func (s *MemoryStore) List(_ context.Context) ([]model.ScanReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ScanReport, len(s.reports))
	for i, r := range s.reports {
		out[i] = r
		out[i].Open = append([]int(nil), r.Open...)
	}
	return out, nil
}

// Clear empties the log.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = nil
	return nil
}
