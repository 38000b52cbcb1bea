package model

import (
	"sort"
	"time"
)

// ScanReport is the serialized subset of a ScanRun submitted to the
// aggregation service: the ports found open, the catalog size at scan
// time, a timestamp, and coarse submitter metadata attached at the
// service boundary.
//
// Design decision: The submitter never supplies its own network
// attributes; RemoteAddr and Country are derived server-side so a
// malicious client cannot spoof the origin metadata of its report.
type ScanReport struct {
	// Open lists the ports the submitter's run classified open.
	Open []int `json:"open"`

	// Total is the catalog size the submitter scanned against.
	Total int `json:"total"`

	// UserAgent is the submitter's self-reported user agent string.
	UserAgent string `json:"ua"`

	// Timestamp is when the report was submitted.
	Timestamp time.Time `json:"ts"`

	// RemoteAddr is the submitter's network address as observed at the
	// service boundary.
	RemoteAddr string `json:"ip"`

	// Country is a coarse geographic attribute supplied by a fronting
	// proxy, or "unknown" when absent.
	Country string `json:"country"`
}

// FrequencyEntry is the aggregate statistic for one port.
type FrequencyEntry struct {
	// Port is the TCP port.
	Port int `json:"port"`

	// Count is the number of reports listing the port as open.
	Count int `json:"count"`

	// Fraction is Count divided by the total number of reports.
	Fraction float64 `json:"fraction"`
}

// FrequencyReport is the per-port open frequency distribution derived
// from a report log. It is always recomputed from the full current log
// rather than stored, to avoid staleness.
type FrequencyReport struct {
	// TotalReports is the number of reports the statistics cover.
	TotalReports int `json:"total_reports"`

	// Entries holds one entry per port ever seen open, ordered by
	// descending count and ascending port for equal counts.
	Entries []FrequencyEntry `json:"entries"`
}

// NewFrequencyReport computes the frequency distribution over the given
// report log.
//
// Design decision: This is a pure function of the log's multiset
// content. Submission order and read timing relative to unrelated
// concurrent appends cannot change the result for the same set of
// reports, which is the property the aggregation contract requires.
func NewFrequencyReport(reports []ScanReport) *FrequencyReport {
	counts := make(map[int]int)
	for _, r := range reports {
		for _, p := range r.Open {
			counts[p]++
		}
	}

	entries := make([]FrequencyEntry, 0, len(counts))
	for port, count := range counts {
		entry := FrequencyEntry{Port: port, Count: count}
		if len(reports) > 0 {
			entry.Fraction = float64(count) / float64(len(reports))
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Port < entries[j].Port
	})

	return &FrequencyReport{
		TotalReports: len(reports),
		Entries:      entries,
	}
}
