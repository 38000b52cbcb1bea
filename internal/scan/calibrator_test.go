package scan

import (
	"context"
	"testing"
	"time"

	"github.com/bountyy/localtap/internal/probe"
)

// proberFunc adapts a function to the probe.Prober interface for tests.
type proberFunc func(ctx context.Context, port int, timeout time.Duration) probe.Outcome

func (f proberFunc) Probe(ctx context.Context, port int, timeout time.Duration) probe.Outcome {
	return f(ctx, port, timeout)
}

// erroredAfter returns a prober whose every probe errors after the
// given per-port elapsed time.
func erroredAfter(elapsed map[int]time.Duration) proberFunc {
	return func(_ context.Context, port int, _ time.Duration) probe.Outcome {
		return probe.Outcome{Port: port, Elapsed: elapsed[port], Mode: probe.ModeErrored}
	}
}

// TestCalibrateMedian tests that the baseline is the median of
// non-timed-out samples.
func TestCalibrateMedian(t *testing.T) {
	t.Parallel()

	c := NewCalibrator(
		erroredAfter(map[int]time.Duration{
			1: 10 * time.Millisecond,
			2: 12 * time.Millisecond,
			3: 11 * time.Millisecond,
			4: 900 * time.Millisecond, // one spurious hang
			5: 9 * time.Millisecond,
		}),
		WithCalibrationPorts([]int{1, 2, 3, 4, 5}),
	)

	baseline := c.Calibrate(context.Background())

	// Sorted: 9, 10, 11, 12, 900 -> median 11ms. The hang does not
	// drag the estimate the way a mean would.
	if baseline != 11*time.Millisecond {
		t.Errorf("expected 11ms baseline, got %v", baseline)
	}
}

// TestCalibrateIgnoresTimeouts tests that timed-out probes are
// excluded from the median.
func TestCalibrateIgnoresTimeouts(t *testing.T) {
	t.Parallel()

	c := NewCalibrator(
		proberFunc(func(_ context.Context, port int, timeout time.Duration) probe.Outcome {
			if port == 1 || port == 2 {
				return probe.Outcome{Port: port, Elapsed: timeout, Mode: probe.ModeTimedOut}
			}
			return probe.Outcome{Port: port, Elapsed: 20 * time.Millisecond, Mode: probe.ModeErrored}
		}),
		WithCalibrationPorts([]int{1, 2, 3}),
	)

	if baseline := c.Calibrate(context.Background()); baseline != 20*time.Millisecond {
		t.Errorf("expected 20ms baseline, got %v", baseline)
	}
}

// TestCalibrateAllTimeoutsFallsBack tests the all-timeout edge case.
func TestCalibrateAllTimeoutsFallsBack(t *testing.T) {
	t.Parallel()

	c := NewCalibrator(
		proberFunc(func(_ context.Context, port int, timeout time.Duration) probe.Outcome {
			return probe.Outcome{Port: port, Elapsed: timeout, Mode: probe.ModeTimedOut}
		}),
	)

	baseline := c.Calibrate(context.Background())

	if baseline != DefaultFallbackBaseline {
		t.Errorf("expected fallback baseline %v, got %v", DefaultFallbackBaseline, baseline)
	}
	if baseline <= 0 {
		t.Error("baseline must never be zero or negative")
	}
}

// TestCalibrateCountsResponded tests that responded probes still
// contribute samples.
func TestCalibrateCountsResponded(t *testing.T) {
	t.Parallel()

	c := NewCalibrator(
		proberFunc(func(_ context.Context, port int, _ time.Duration) probe.Outcome {
			return probe.Outcome{Port: port, Elapsed: 15 * time.Millisecond, Mode: probe.ModeResponded}
		}),
		WithCalibrationPorts([]int{1}),
	)

	if baseline := c.Calibrate(context.Background()); baseline != 15*time.Millisecond {
		t.Errorf("expected 15ms baseline, got %v", baseline)
	}
}

// TestCalibratorOptions tests option application.
func TestCalibratorOptions(t *testing.T) {
	t.Parallel()

	c := NewCalibrator(
		erroredAfter(nil),
		WithCalibrationTimeout(2*time.Second),
		WithFallbackBaseline(80*time.Millisecond),
	)

	if c.timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", c.timeout)
	}
	if c.fallback != 80*time.Millisecond {
		t.Errorf("expected 80ms fallback, got %v", c.fallback)
	}

	// Non-positive values keep defaults.
	c = NewCalibrator(erroredAfter(nil), WithCalibrationTimeout(0), WithFallbackBaseline(0))
	if c.timeout != 1500*time.Millisecond || c.fallback != DefaultFallbackBaseline {
		t.Error("non-positive option values should keep defaults")
	}
}
