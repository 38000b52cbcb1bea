package scan

import (
	"time"

	"github.com/bountyy/localtap/internal/model"
	"github.com/bountyy/localtap/internal/probe"
)

// Classifier converts probe outcomes into open/closed verdicts using a
// calibrated baseline.
//
// The execution environments this models deliberately hide raw
// connection-refused signals; only wall-clock timing differentiates an
// instant refusal (no listener) from a handshake followed by an
// application-level rejection (listener present). The threshold below
// encodes that distinction.
type Classifier struct {
	// Baseline is the calibrated round-trip time for a connection
	// attempt against a definitely-closed port on this host.
	Baseline time.Duration

	// Multiplier scales the baseline for the error-timing threshold.
	Multiplier int

	// Slack is the minimum margin added to the baseline, dominating
	// the multiplier when the baseline is very small.
	Slack time.Duration
}

// NewClassifier creates a classifier with the default threshold shape:
// max(3 x baseline, baseline + 50ms).
func NewClassifier(baseline time.Duration) Classifier {
	return Classifier{
		Baseline:   baseline,
		Multiplier: 3,
		Slack:      50 * time.Millisecond,
	}
}

// Threshold returns the elapsed-time boundary above which an errored
// probe is attributed to a listener rather than an immediate refusal.
func (c Classifier) Threshold() time.Duration {
	scaled := time.Duration(c.Multiplier) * c.Baseline
	slacked := c.Baseline + c.Slack
	if scaled > slacked {
		return scaled
	}
	return slacked
}

// Classify returns the open/closed verdict for one probe outcome.
//
// A responded probe proves a listener accepted the connection, even an
// opaque cross-origin one. A timeout carries no evidence of a listener
// and is treated as filtered-or-absent. An errored probe is classified
// by timing: an error slower than the threshold happened after a real
// handshake and a rejection, so a listener exists; an error at baseline
// speed is an immediate refusal. Ties at exactly the threshold classify
// closed, so the boundary never produces a false positive.
func (c Classifier) Classify(o probe.Outcome) model.PortState {
	switch o.Mode {
	case probe.ModeResponded:
		return model.StateOpen
	case probe.ModeTimedOut:
		return model.StateClosed
	default:
		if o.Elapsed > c.Threshold() {
			return model.StateOpen
		}
		return model.StateClosed
	}
}
