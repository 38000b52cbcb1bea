// Package probe implements the single-port loopback probe primitive:
// one bounded-time TCP connection attempt whose outcome and elapsed
// time are the raw signal for open/closed inference.
package probe
