package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bountyy/localtap/internal/aggregate"
	"github.com/bountyy/localtap/internal/catalog"
	"github.com/bountyy/localtap/internal/model"
)

// newTestServer builds a server over a fresh in-memory store.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cat := catalog.New([]catalog.Record{
		{Port: 3000, Identity: "Next.js", Category: catalog.CategoryWebDev},
		{Port: 11434, Identity: "Ollama API", Category: catalog.CategoryAI},
		{Port: 6379, Identity: "Redis", Category: catalog.CategoryData},
	})
	agg := aggregate.NewAggregator(aggregate.NewMemoryStore(100), nil)

	return New(agg, cat, nil)
}

// do runs one request against the server and returns the recorder.
func do(t *testing.T, s *Server, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a JSON response body.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
}

// TestSubmitReport tests report submission with derived metadata.
func TestSubmitReport(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/report",
		`{"open":[3000,11434],"total":246,"ua":"test-agent/1.0","ts":1741950000000}`,
		map[string]string{"X-Country": "DE"},
	)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, s, http.MethodGet, "/api/results", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var results struct {
		Count   int                `json:"count"`
		Reports []model.ScanReport `json:"reports"`
	}
	decode(t, rec, &results)

	if results.Count != 1 {
		t.Fatalf("expected 1 report, got %d", results.Count)
	}
	got := results.Reports[0]
	if len(got.Open) != 2 || got.Open[0] != 3000 {
		t.Errorf("unexpected open ports: %v", got.Open)
	}
	if got.Country != "DE" {
		t.Errorf("expected country from header, got %q", got.Country)
	}
	if got.RemoteAddr == "" {
		t.Error("expected server-derived remote address")
	}
	if got.Timestamp.Year() != 2025 {
		t.Errorf("epoch-millis timestamp not parsed: %v", got.Timestamp)
	}
}

// TestSubmitReportDefaults tests the safe-default repairs and the
// spoofing guard on submitter metadata.
func TestSubmitReportDefaults(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	// The body tries to smuggle its own ip field; the server must
	// derive it instead of trusting the submission.
	rec := do(t, s, http.MethodPost, "/api/report",
		`{"open":null,"total":-5,"ts":"not a time","ip":"1.2.3.4"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, s, http.MethodGet, "/api/results", "", nil)

	var results struct {
		Reports []model.ScanReport `json:"reports"`
	}
	decode(t, rec, &results)

	got := results.Reports[0]
	if got.Open == nil || len(got.Open) != 0 {
		t.Errorf("expected empty open list, got %v", got.Open)
	}
	if got.Total != 0 {
		t.Errorf("expected clamped total, got %d", got.Total)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected timestamp fallback")
	}
	if got.Country != "unknown" {
		t.Errorf("expected country fallback, got %q", got.Country)
	}
	if got.RemoteAddr == "1.2.3.4" {
		t.Error("client-supplied ip must not be trusted")
	}
}

// TestSubmitReportWrongFieldTypes tests that fields of the wrong JSON
// type degrade to safe defaults instead of rejecting the submission.
func TestSubmitReportWrongFieldTypes(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/report",
		`{"open":"not-a-list","total":"ten","ua":42,"ts":[]}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for parseable body, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, s, http.MethodGet, "/api/results", "", nil)

	var results struct {
		Reports []model.ScanReport `json:"reports"`
	}
	decode(t, rec, &results)

	got := results.Reports[0]
	if got.Open == nil || len(got.Open) != 0 {
		t.Errorf("expected empty open list, got %v", got.Open)
	}
	if got.Total != 0 {
		t.Errorf("expected zero total, got %d", got.Total)
	}
	if got.UserAgent != "" {
		t.Errorf("expected empty user agent, got %q", got.UserAgent)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected timestamp fallback")
	}

	// Non-numeric list entries are dropped, numeric ones kept.
	rec = do(t, s, http.MethodPost, "/api/report",
		`{"open":[3000,"x",null,6379],"total":246}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = do(t, s, http.MethodGet, "/api/results", "", nil)
	decode(t, rec, &results)

	got = results.Reports[1]
	if len(got.Open) != 2 || got.Open[0] != 3000 || got.Open[1] != 6379 {
		t.Errorf("expected numeric entries kept, got %v", got.Open)
	}
}

// TestSubmitReportRejectsNonJSON tests the only hard rejection.
func TestSubmitReportRejectsNonJSON(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/report", "open=3000&total=10", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-JSON body, got %d", rec.Code)
	}
}

// TestFrequency tests the derived statistics endpoint.
func TestFrequency(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	for _, body := range []string{
		`{"open":[3000,6379],"total":246}`,
		`{"open":[3000],"total":246}`,
	} {
		if rec := do(t, s, http.MethodPost, "/api/report", body, nil); rec.Code != http.StatusOK {
			t.Fatalf("submission failed: %d", rec.Code)
		}
	}

	rec := do(t, s, http.MethodGet, "/api/frequency", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var freq model.FrequencyReport
	decode(t, rec, &freq)

	if freq.TotalReports != 2 {
		t.Errorf("expected 2 reports covered, got %d", freq.TotalReports)
	}
	if len(freq.Entries) != 2 || freq.Entries[0].Port != 3000 || freq.Entries[0].Count != 2 {
		t.Errorf("unexpected entries: %+v", freq.Entries)
	}
}

// TestClear tests both clear methods and the cycle back to empty.
func TestClear(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t)
			if rec := do(t, s, http.MethodPost, "/api/report", `{"open":[3000],"total":246}`, nil); rec.Code != http.StatusOK {
				t.Fatalf("submission failed: %d", rec.Code)
			}

			if rec := do(t, s, method, "/api/clear", "", nil); rec.Code != http.StatusOK {
				t.Fatalf("clear failed: %d", rec.Code)
			}

			rec := do(t, s, http.MethodGet, "/api/results", "", nil)
			var results struct {
				Count int `json:"count"`
			}
			decode(t, rec, &results)
			if results.Count != 0 {
				t.Errorf("expected empty log after clear, got %d", results.Count)
			}
		})
	}
}

// TestTargets tests the catalog endpoint and category filtering.
func TestTargets(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	t.Run("all targets", func(t *testing.T) {
		t.Parallel()

		rec := do(t, s, http.MethodGet, "/api/targets", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp struct {
			Count int `json:"count"`
		}
		decode(t, rec, &resp)
		if resp.Count != 3 {
			t.Errorf("expected 3 targets, got %d", resp.Count)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		t.Parallel()

		rec := do(t, s, http.MethodGet, "/api/targets?category=ai", "", nil)

		var resp struct {
			Count   int              `json:"count"`
			Targets []map[string]any `json:"targets"`
		}
		decode(t, rec, &resp)
		if resp.Count != 1 {
			t.Fatalf("expected 1 AI target, got %d", resp.Count)
		}
		if resp.Targets[0]["identity"] != "Ollama API" {
			t.Errorf("unexpected target: %v", resp.Targets[0])
		}
	})
}

// TestHealth tests the liveness endpoint.
func TestHealth(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "3 targets") {
		t.Errorf("unexpected health body: %q", rec.Body.String())
	}
}

// failingStore simulates storage failures behind the aggregator.
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

// TestStorageFailureSurfaces tests the 500 paths.
func TestStorageFailureSurfaces(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]catalog.Record{{Port: 3000, Identity: "svc"}})
	s := New(aggregate.NewAggregator(failingStore{}, nil), cat, nil)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/report", `{"open":[],"total":0}`},
		{http.MethodGet, "/api/results", ""},
		{http.MethodGet, "/api/frequency", ""},
		{http.MethodPost, "/api/clear", ""},
	}

	for _, tt := range tests {
		if rec := do(t, s, tt.method, tt.path, tt.body, nil); rec.Code != http.StatusInternalServerError {
			t.Errorf("%s %s: expected 500, got %d", tt.method, tt.path, rec.Code)
		}
	}
}
