package probe

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"
)

// CompletionMode describes how a probe attempt ended.
//
// Design decision: A probe has three completion modes rather than a
// success/error pair because failure is the expected, informative case
// here. Whether an error was "fast" (immediate refusal, no listener)
// or "slow" (handshake plus an application-level rejection) is decided
// later by the classifier from the elapsed time; the probe itself only
// separates errors from timeouts.
type CompletionMode int

const (
	// ModeResponded means the runtime recognized a peer before the
	// timeout: the connection was accepted, even if whatever sits
	// behind it would reject the application request.
	ModeResponded CompletionMode = iota

	// ModeErrored means the attempt failed before the timeout.
	ModeErrored

	// ModeTimedOut means the attempt neither succeeded nor failed
	// within the allowed window. Ambiguous: a filtered port, a slow
	// listener, or a heavily loaded host.
	ModeTimedOut
)

// String returns a human-readable representation of the completion mode.
func (m CompletionMode) String() string {
	switch m {
	case ModeResponded:
		return "responded"
	case ModeErrored:
		return "errored"
	case ModeTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Outcome is the result of one probe attempt. It is produced by a
// Prober, consumed immediately by the classifier, and not retained.
type Outcome struct {
	// Port is the probed TCP port.
	Port int

	// Elapsed is the wall-clock duration of the attempt.
	Elapsed time.Duration

	// Mode is how the attempt completed.
	Mode CompletionMode
}

// ElapsedMillis returns the elapsed time in milliseconds.
func (o Outcome) ElapsedMillis() float64 {
	return float64(o.Elapsed) / float64(time.Millisecond)
}

// Prober issues a single bounded-time connection attempt against one
// local port.
//
// Design decision: We use an interface rather than a concrete type
// because the calibrator and orchestrator only care about outcomes,
// and tests substitute deterministic probers for the real network.
type Prober interface {
	// Probe attempts one round-trip to the given port and returns the
	// outcome. Network failure is encoded in the outcome, never
	// returned as an error; there is no failure path the caller must
	// handle beyond reading the completion mode.
	Probe(ctx context.Context, port int, timeout time.Duration) Outcome
}

// TCPProber probes ports on the local loopback address with plain TCP
// connection attempts.
type TCPProber struct {
	// host is the loopback address to dial. 127.0.0.1 avoids DNS
	// resolution overhead and IPv6 ambiguity.
	host string

	// dialer performs the actual connection attempts.
	dialer net.Dialer
}

// TCPProberOption configures a TCPProber.
type TCPProberOption func(*TCPProber)

// WithHost overrides the loopback address to dial.
// This exists for tests that bind listeners on ephemeral addresses.
func WithHost(host string) TCPProberOption {
	return func(p *TCPProber) {
		if host != "" {
			p.host = host
		}
	}
}

// NewTCPProber creates a prober targeting 127.0.0.1.
func NewTCPProber(opts ...TCPProberOption) *TCPProber {
	p := &TCPProber{host: "127.0.0.1"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe dials the port once and classifies the attempt.
// A successful connect is responded; deadline expiry (or caller
// cancellation) is a timeout; any other dial error is errored and the
// elapsed time carries the signal.
func (p *TCPProber) Probe(ctx context.Context, port int, timeout time.Duration) Outcome {
	addr := net.JoinHostPort(p.host, strconv.Itoa(port))

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	conn, err := p.dialer.DialContext(ctx, "tcp", addr)
	elapsed := time.Since(start)

	outcome := Outcome{Port: port, Elapsed: elapsed}

	switch {
	case err == nil:
		_ = conn.Close()
		outcome.Mode = ModeResponded
	case isTimeout(err):
		outcome.Mode = ModeTimedOut
	default:
		outcome.Mode = ModeErrored
	}

	return outcome
}

// isTimeout reports whether the dial error means the attempt hit its
// time boundary rather than failing outright. Caller cancellation is
// treated the same way: no evidence of a listener was gathered.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
