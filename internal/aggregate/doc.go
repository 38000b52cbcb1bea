// Package aggregate collects submitted scan reports and derives
// aggregate statistics from them. A Store holds the capped report log;
// the Aggregator wraps a store with validation, submitter metadata
// stamping, and frequency computation.
package aggregate
