// Package database provides SQLite-based persistence for submitted
// scan reports. The report log is capped: once the retention limit is
// reached, appending a new report evicts the oldest one.
package database
