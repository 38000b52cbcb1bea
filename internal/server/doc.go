// Package server exposes the aggregation service over HTTP: report
// submission, the raw report log, derived frequency statistics, and
// the target catalog.
package server
