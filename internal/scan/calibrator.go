package scan

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/bountyy/localtap/internal/probe"
	"golang.org/x/sync/errgroup"
)

// DefaultCalibrationPorts are high ephemeral-range ports vanishingly
// unlikely to host a real service. They sit well above every catalog
// range so a calibration probe measures a guaranteed-closed port.
var DefaultCalibrationPorts = []int{38291, 41753, 49582, 52847, 57391}

// DefaultFallbackBaseline is the conservative baseline assumed when
// every calibration probe times out (host under heavy load, or a
// platform that enforces uniform timeout behavior for all attempts).
const DefaultFallbackBaseline = 50 * time.Millisecond

// Calibrator estimates the round-trip time of a connection attempt
// against a definitely-closed port on this host. The estimate anchors
// the classifier's timing threshold.
type Calibrator struct {
	// prober issues the calibration probes.
	prober probe.Prober

	// ports are the guaranteed-closed ports to sample.
	ports []int

	// timeout bounds each individual calibration probe.
	timeout time.Duration

	// fallback is used when every probe times out.
	fallback time.Duration

	// logger is used for structured logging.
	logger *slog.Logger
}

// CalibratorOption configures a Calibrator.
type CalibratorOption func(*Calibrator)

// WithCalibrationPorts overrides the sampled ports.
func WithCalibrationPorts(ports []int) CalibratorOption {
	return func(c *Calibrator) {
		if len(ports) > 0 {
			c.ports = ports
		}
	}
}

// WithCalibrationTimeout sets the per-probe timeout.
func WithCalibrationTimeout(d time.Duration) CalibratorOption {
	return func(c *Calibrator) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithFallbackBaseline sets the baseline used when all probes time out.
func WithFallbackBaseline(d time.Duration) CalibratorOption {
	return func(c *Calibrator) {
		if d > 0 {
			c.fallback = d
		}
	}
}

// WithCalibratorLogger sets a custom logger.
func WithCalibratorLogger(logger *slog.Logger) CalibratorOption {
	return func(c *Calibrator) {
		c.logger = logger
	}
}

// NewCalibrator creates a Calibrator with the given options.
func NewCalibrator(prober probe.Prober, opts ...CalibratorOption) *Calibrator {
	c := &Calibrator{
		prober:   prober,
		ports:    DefaultCalibrationPorts,
		timeout:  1500 * time.Millisecond,
		fallback: DefaultFallbackBaseline,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Calibrate probes all calibration ports in parallel and returns the
// median elapsed time among probes that did not time out.
//
// Design decision: Median over mean because with n~5 samples a single
// spuriously hanging probe would drag a mean far from the typical
// refusal time, while the median shrugs it off. Probes that responded
// still count: a collision with a real listener on an ephemeral port
// is rare, and the median absorbs one outlier either way.
//
// Calibrate always terminates with a usable baseline; the all-timeout
// edge case yields the fixed fallback rather than failing the scan.
func (c *Calibrator) Calibrate(ctx context.Context) time.Duration {
	var mu sync.Mutex
	times := make([]time.Duration, 0, len(c.ports))

	g, ctx := errgroup.WithContext(ctx)
	for _, port := range c.ports {
		g.Go(func() error {
			outcome := c.prober.Probe(ctx, port, c.timeout)
			if outcome.Mode != probe.ModeTimedOut {
				mu.Lock()
				times = append(times, outcome.Elapsed)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // Goroutines never return errors

	if len(times) == 0 {
		c.logger.Warn("all calibration probes timed out, using fallback baseline",
			"fallback", c.fallback,
		)
		return c.fallback
	}

	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	baseline := times[len(times)/2]

	c.logger.Debug("calibration complete",
		"samples", len(times),
		"baseline", baseline,
	)

	return baseline
}
