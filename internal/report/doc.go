// Package report renders finished scan runs for humans and tools.
// A Summary joins the run's open-port verdicts with catalog metadata;
// writers output it as plain text, JSON, or Markdown.
package report
