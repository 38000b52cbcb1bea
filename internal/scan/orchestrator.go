package scan

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bountyy/localtap/internal/catalog"
	"github.com/bountyy/localtap/internal/model"
	"github.com/bountyy/localtap/internal/probe"
	"golang.org/x/sync/errgroup"
)

// RunState represents the lifecycle state of one scan run.
type RunState int

const (
	// RunIdle means no scan is in progress.
	RunIdle RunState = iota

	// RunCalibrating means the baseline estimate is being gathered.
	RunCalibrating

	// RunScanning means catalog batches are being probed.
	RunScanning

	// RunCompleted means the run holds a full verdict set.
	RunCompleted

	// RunCancelled means the run was stopped before covering the catalog.
	RunCancelled
)

// String returns a human-readable representation of the run state.
func (s RunState) String() string {
	switch s {
	case RunIdle:
		return "idle"
	case RunCalibrating:
		return "calibrating"
	case RunScanning:
		return "scanning"
	case RunCompleted:
		return "completed"
	case RunCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ErrScanInProgress is returned by Run when a scan is already running
// on this orchestrator. Each orchestrator drives at most one run at a
// time; concurrent runs need separate orchestrators.
var ErrScanInProgress = errors.New("scan already in progress")

// uniformAnomalyMinCatalog is the smallest catalog size on which an
// all-open result is treated as an environment anomaly rather than a
// finding. On tiny catalogs all-open can legitimately happen.
const uniformAnomalyMinCatalog = 10

// VerdictFunc receives per-port state transitions as they happen.
// Any consumer (terminal UI, web UI, test harness) can subscribe;
// the orchestrator serializes calls, so implementations need no
// internal locking against other verdict events.
type VerdictFunc func(port int, state model.PortState)

// ProgressFunc receives (ports processed so far, total) after every batch.
type ProgressFunc func(scanned, total int)

// Orchestrator drives a catalog through calibration and batched
// probing into a complete verdict set.
//
// Design decision: The orchestrator owns a run-scoped ScanRun rather
// than process-wide state, and the catalog is injected at construction.
// Multiple orchestrators can run concurrently without sharing anything
// mutable.
type Orchestrator struct {
	// cat is the injected target catalog.
	cat *catalog.Catalog

	// prober issues the per-port probes.
	prober probe.Prober

	// calibrator estimates the baseline before scanning.
	calibrator *Calibrator

	// batchSize bounds in-flight probes per batch.
	batchSize int

	// probeTimeout bounds each catalog probe.
	probeTimeout time.Duration

	// thresholdMultiplier and thresholdSlack shape the classifier
	// threshold: max(multiplier x baseline, baseline + slack).
	thresholdMultiplier int
	thresholdSlack      time.Duration

	// onVerdict and onProgress are optional subscriber callbacks.
	onVerdict  VerdictFunc
	onProgress ProgressFunc

	// logger is used for structured logging.
	logger *slog.Logger

	// mu guards run-state transitions.
	mu    sync.Mutex
	state RunState

	// verdictMu serializes verdict mutations and subscriber callbacks.
	// Updates within a batch may resolve in any order, but they never
	// interleave, mirroring a single-threaded event loop.
	verdictMu sync.Mutex

	// stopped requests cooperative cancellation between batches.
	stopped atomic.Bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithBatchSize sets the number of concurrent probes per batch.
// Default is 12; bounded concurrency avoids overwhelming the local
// network stack or tripping platform-level rate limiting.
func WithBatchSize(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// WithProbeTimeout sets the per-probe timeout for catalog probes.
func WithProbeTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.probeTimeout = d
		}
	}
}

// WithThreshold sets the classifier threshold parameters.
func WithThreshold(multiplier int, slack time.Duration) Option {
	return func(o *Orchestrator) {
		if multiplier > 0 {
			o.thresholdMultiplier = multiplier
		}
		if slack > 0 {
			o.thresholdSlack = slack
		}
	}
}

// WithCalibrator replaces the default calibrator.
func WithCalibrator(c *Calibrator) Option {
	return func(o *Orchestrator) {
		if c != nil {
			o.calibrator = c
		}
	}
}

// WithVerdictFunc subscribes a consumer to per-port state transitions.
func WithVerdictFunc(fn VerdictFunc) Option {
	return func(o *Orchestrator) {
		o.onVerdict = fn
	}
}

// WithProgressFunc subscribes a consumer to per-batch progress.
func WithProgressFunc(fn ProgressFunc) Option {
	return func(o *Orchestrator) {
		o.onProgress = fn
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// NewOrchestrator creates an Orchestrator for the given catalog.
func NewOrchestrator(cat *catalog.Catalog, prober probe.Prober, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cat:                 cat,
		prober:              prober,
		batchSize:           12,
		probeTimeout:        1500 * time.Millisecond,
		thresholdMultiplier: 3,
		thresholdSlack:      50 * time.Millisecond,
		state:               RunIdle,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.calibrator == nil {
		o.calibrator = NewCalibrator(o.prober, WithCalibratorLogger(o.logger))
	}

	return o
}

// State returns the current run state.
func (o *Orchestrator) State() RunState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Stop requests cancellation of the current run. Batch dispatch halts
// immediately; probes already in flight finish and their results are
// still applied. Idempotent, and a no-op when nothing is scanning.
func (o *Orchestrator) Stop() {
	o.stopped.Store(true)
}

// Run executes one scan: calibrate, then probe the catalog in batches,
// classifying results as they arrive. It returns the run's verdict
// set; individual probe failures are data, never errors, so the only
// error path is starting a run while another is active.
//
// Batches execute strictly in catalog order; within a batch no
// ordering is guaranteed, but every port's own transitions are always
// pending -> scanning -> terminal.
func (o *Orchestrator) Run(ctx context.Context) (*model.ScanRun, error) {
	o.mu.Lock()
	if o.state == RunCalibrating || o.state == RunScanning {
		o.mu.Unlock()
		return nil, ErrScanInProgress
	}
	o.state = RunCalibrating
	o.stopped.Store(false)
	o.mu.Unlock()

	run := model.NewScanRun(o.cat.Ports())
	o.emitAll(run)

	o.logger.Info("calibrating baseline")
	baseline := o.calibrator.Calibrate(ctx)
	run.BaselineMillis = float64(baseline) / float64(time.Millisecond)

	classifier := Classifier{
		Baseline:   baseline,
		Multiplier: o.thresholdMultiplier,
		Slack:      o.thresholdSlack,
	}

	o.setState(RunScanning)
	o.logger.Info("scanning catalog",
		"ports", run.Total(),
		"batchSize", o.batchSize,
		"baseline", baseline,
		"threshold", classifier.Threshold(),
	)

	records := o.cat.Records()
	for i := 0; i < len(records); i += o.batchSize {
		if o.stopped.Load() || ctx.Err() != nil {
			return o.finishCancelled(run), nil
		}

		end := i + o.batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[i:end]

		for _, r := range batch {
			o.applyVerdict(run, r.Port, model.StateScanning)
		}

		g := new(errgroup.Group)
		for _, r := range batch {
			g.Go(func() error {
				outcome := o.prober.Probe(ctx, r.Port, o.probeTimeout)
				o.applyVerdict(run, r.Port, classifier.Classify(outcome))
				return nil
			})
		}
		_ = g.Wait() //nolint:errcheck // Probe goroutines never return errors

		if o.onProgress != nil {
			o.onProgress(end, len(records))
		}
	}

	// A stop that lands during the final batch changes nothing: every
	// port already holds a terminal verdict, so the run is complete.
	if ctx.Err() != nil || (o.stopped.Load() && !fullyClassified(run)) {
		return o.finishCancelled(run), nil
	}

	open := run.CountByState(model.StateOpen)
	if open == run.Total() && run.Total() > uniformAnomalyMinCatalog {
		run.Inconclusive = true
		o.logger.Warn("uniform-result anomaly: every port classified open; environment likely blocks timing discrimination",
			"ports", run.Total(),
		)
	}

	run.FinishedAt = time.Now().UTC()
	o.setState(RunCompleted)
	o.logger.Info("scan complete",
		"open", open,
		"total", run.Total(),
		"inconclusive", run.Inconclusive,
	)

	return run, nil
}

// fullyClassified reports whether every port holds a terminal verdict.
func fullyClassified(run *model.ScanRun) bool {
	terminal := run.CountByState(model.StateOpen) + run.CountByState(model.StateClosed)
	return terminal == run.Total()
}

// finishCancelled marks the run cancelled. Ports not yet classified
// keep whatever state they last had; they are not retroactively marked.
func (o *Orchestrator) finishCancelled(run *model.ScanRun) *model.ScanRun {
	run.Cancelled = true
	run.FinishedAt = time.Now().UTC()
	o.setState(RunCancelled)
	o.logger.Info("scan cancelled",
		"classified", run.CountByState(model.StateOpen)+run.CountByState(model.StateClosed),
		"total", run.Total(),
	)
	return run
}

// applyVerdict mutates one port's state and notifies the subscriber.
// All mutations funnel through here under verdictMu.
func (o *Orchestrator) applyVerdict(run *model.ScanRun, port int, state model.PortState) {
	o.verdictMu.Lock()
	defer o.verdictMu.Unlock()

	run.SetState(port, state)
	if o.onVerdict != nil {
		o.onVerdict(port, state)
	}
}

// emitAll announces the reset-to-pending of every port at run start.
func (o *Orchestrator) emitAll(run *model.ScanRun) {
	if o.onVerdict == nil {
		return
	}
	for _, p := range o.cat.Ports() {
		o.onVerdict(p, run.State(p))
	}
}

// setState transitions the orchestrator's run state.
func (o *Orchestrator) setState(s RunState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}
