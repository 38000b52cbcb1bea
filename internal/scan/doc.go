// Package scan implements the port-reachability inference engine: the
// timing calibrator, the open/closed classifier, and the orchestrator
// that drives a catalog through batched probes into a verdict set.
package scan
