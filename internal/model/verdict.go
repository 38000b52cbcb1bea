package model

import (
	"sort"
	"time"
)

// PortState represents the lifecycle state of a single port within one
// scan run. A port starts pending, is marked scanning when its batch is
// dispatched, and ends in exactly one of the two terminal states unless
// the run is cancelled first.
//
// Design decision: We use iota-based constants rather than string
// constants for efficiency in comparisons and sorting. The String()
// method provides human-readable output when needed.
type PortState int

const (
	// StatePending means the port has not been dispatched yet.
	StatePending PortState = iota

	// StateScanning means the port's probe is in flight.
	StateScanning

	// StateOpen means a listener was inferred on the port.
	StateOpen

	// StateClosed means no listener was inferred on the port.
	StateClosed
)

// String returns a human-readable representation of the port state.
func (s PortState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateScanning:
		return "scanning"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is one of the two terminal states.
func (s PortState) Terminal() bool {
	return s == StateOpen || s == StateClosed
}

// PortVerdict is the durable per-port result for one scan run.
// It is owned exclusively by one ScanRun and never shared across runs.
type PortVerdict struct {
	// Port is the probed TCP port.
	Port int `json:"port"`

	// State is the current lifecycle state of the port.
	State PortState `json:"state"`
}

// ScanRun aggregates all PortVerdicts for one scan session together
// with the calibrated baseline. It is created at scan start and either
// discarded or exported as a ScanReport at scan end.
//
// Design decision: State is owned by a run-scoped object rather than a
// process-wide structure so that concurrent runs (including concurrent
// test scenarios) never share mutable state. The orchestrator injects
// the catalog and is the sole mutator of the verdict set.
type ScanRun struct {
	// BaselineMillis is the calibrated round-trip time, in milliseconds,
	// for a connection attempt against a definitely-closed port.
	BaselineMillis float64 `json:"baseline_ms"`

	// Verdicts maps each catalog port to its verdict.
	Verdicts map[int]*PortVerdict `json:"verdicts"`

	// StartedAt is when the run began calibrating.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run completed or was cancelled.
	FinishedAt time.Time `json:"finished_at"`

	// Cancelled is true if the run was stopped before covering the
	// whole catalog. Untouched ports keep their last observed state.
	Cancelled bool `json:"cancelled"`

	// Inconclusive is true when the run exhibited a uniform-result
	// anomaly: every scanned port classified open on a catalog large
	// enough that this almost certainly reflects an execution
	// environment that blocks timing discrimination, not reality.
	Inconclusive bool `json:"inconclusive"`
}

// NewScanRun creates a ScanRun with every port in pending state.
func NewScanRun(ports []int) *ScanRun {
	verdicts := make(map[int]*PortVerdict, len(ports))
	for _, p := range ports {
		verdicts[p] = &PortVerdict{Port: p, State: StatePending}
	}
	return &ScanRun{
		Verdicts:  verdicts,
		StartedAt: time.Now().UTC(),
	}
}

// SetState transitions a port to the given state. Unknown ports are
// ignored; the verdict set is fixed at run creation.
func (r *ScanRun) SetState(port int, state PortState) {
	if v, ok := r.Verdicts[port]; ok {
		v.State = state
	}
}

// State returns the current state of a port, or StatePending if the
// port is not part of this run.
func (r *ScanRun) State(port int) PortState {
	if v, ok := r.Verdicts[port]; ok {
		return v.State
	}
	return StatePending
}

// OpenPorts returns the sorted list of ports with an open verdict.
func (r *ScanRun) OpenPorts() []int {
	ports := make([]int, 0, len(r.Verdicts))
	for p, v := range r.Verdicts {
		if v.State == StateOpen {
			ports = append(ports, p)
		}
	}
	sort.Ints(ports)
	return ports
}

// CountByState returns the number of ports currently in the given state.
func (r *ScanRun) CountByState(state PortState) int {
	n := 0
	for _, v := range r.Verdicts {
		if v.State == state {
			n++
		}
	}
	return n
}

// Total returns the number of ports covered by this run.
func (r *ScanRun) Total() int {
	return len(r.Verdicts)
}
