// Package model defines the core data types for LocalTap: per-port
// verdicts, scan runs, submitted scan reports, and the frequency
// statistics derived from them.
package model
