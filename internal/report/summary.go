package report

import (
	"time"

	"github.com/bountyy/localtap/internal/catalog"
	"github.com/bountyy/localtap/internal/model"
)

// Finding is one open port enriched with its catalog metadata.
type Finding struct {
	// Port is the open TCP port.
	Port int `json:"port"`

	// Identity names the service the catalog associates with the port.
	Identity string `json:"identity"`

	// Auth is the catalog's authentication posture for the service.
	Auth catalog.AuthPosture `json:"auth"`

	// Rebind is the catalog's DNS-rebinding exposure assessment.
	Rebind catalog.Rebind `json:"rebind"`

	// Impact describes what an attacker reaching the port could do.
	Impact string `json:"impact"`

	// Category groups the service by kind.
	Category catalog.Category `json:"category"`
}

// Summary is the render-ready view of one finished scan run.
//
// Design decision: The summary is assembled once from the run and the
// catalog rather than having writers query both. Writers then share
// one consistent snapshot, and a run can be summarized after the
// orchestrator that produced it is gone.
type Summary struct {
	// DateScanned is when the scan started.
	DateScanned time.Time `json:"date_scanned"`

	// Duration is how long the scan took.
	Duration time.Duration `json:"duration"`

	// BaselineMillis is the calibrated baseline in milliseconds.
	BaselineMillis float64 `json:"baseline_ms"`

	// Total is the number of catalog ports probed.
	Total int `json:"total"`

	// OpenCount is the number of ports classified open.
	OpenCount int `json:"open_count"`

	// Cancelled marks a run stopped before covering the catalog.
	Cancelled bool `json:"cancelled"`

	// Inconclusive marks a run whose uniform result suggests the
	// environment blocked timing discrimination.
	Inconclusive bool `json:"inconclusive"`

	// Findings lists open ports with catalog metadata, ascending by port.
	Findings []Finding `json:"findings"`
}

// NewSummary joins a finished run's open ports with their catalog records.
func NewSummary(run *model.ScanRun, cat *catalog.Catalog) *Summary {
	open := run.OpenPorts()

	findings := make([]Finding, 0, len(open))
	for _, port := range open {
		f := Finding{Port: port, Identity: "unknown service"}
		if rec, ok := cat.Lookup(port); ok {
			f.Identity = rec.Identity
			f.Auth = rec.Auth
			f.Rebind = rec.Rebind
			f.Impact = rec.Impact
			f.Category = rec.Category
		}
		findings = append(findings, f)
	}

	return &Summary{
		DateScanned:    run.StartedAt,
		Duration:       run.FinishedAt.Sub(run.StartedAt),
		BaselineMillis: run.BaselineMillis,
		Total:          run.Total(),
		OpenCount:      len(open),
		Cancelled:      run.Cancelled,
		Inconclusive:   run.Inconclusive,
		Findings:       findings,
	}
}

// HasFindings reports whether any port was classified open.
func (s *Summary) HasFindings() bool {
	return len(s.Findings) > 0
}

// CountByCategory tallies findings per service category.
func (s *Summary) CountByCategory() map[catalog.Category]int {
	counts := make(map[catalog.Category]int)
	for _, f := range s.Findings {
		counts[f.Category]++
	}
	return counts
}

// FindingsByCategory returns the findings in the given category,
// keeping the summary's port ordering.
func (s *Summary) FindingsByCategory(c catalog.Category) []Finding {
	var out []Finding
	for _, f := range s.Findings {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}
