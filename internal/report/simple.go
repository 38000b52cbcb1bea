package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bountyy/localtap/internal/catalog"
)

// orderedCategories fixes the display order of category sections.
func orderedCategories() []catalog.Category {
	return []catalog.Category{
		catalog.CategoryAI,
		catalog.CategoryData,
		catalog.CategoryInfra,
		catalog.CategoryAutomation,
		catalog.CategoryWebDev,
		catalog.CategoryDev,
	}
}

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no findings are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary in human-readable format.
func (w *SimpleWriter) Write(summary *Summary) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, summary)
	w.writeFindings(&sb, summary)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, summary *Summary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                          LOCALTAP REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Scan Date:      %s\n", summary.DateScanned.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Duration:       %s\n", summary.Duration.Round(10*time.Millisecond)))
	sb.WriteString(fmt.Sprintf("Baseline:       %.1f ms\n", summary.BaselineMillis))
	sb.WriteString(fmt.Sprintf("Ports Probed:   %d\n", summary.Total))
	sb.WriteString(fmt.Sprintf("Status:         %s\n", w.statusText(summary)))

	sb.WriteString("\n")
}

// statusText returns the status line based on the summary flags.
func (w *SimpleWriter) statusText(summary *Summary) string {
	switch {
	case summary.Inconclusive:
		return "INCONCLUSIVE (uniform result, environment likely interfering)"
	case summary.Cancelled:
		return "CANCELLED (partial results)"
	default:
		return "Complete"
	}
}

// writeFindings writes the open ports grouped by category.
func (w *SimpleWriter) writeFindings(sb *strings.Builder, summary *Summary) {
	if !summary.HasFindings() && !w.showEmpty {
		sb.WriteString("No reachable services detected.\n\n")
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("REACHABLE SERVICES (%d)\n", summary.OpenCount))
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	counts := summary.CountByCategory()
	for _, category := range orderedCategories() {
		if counts[category] == 0 && !w.showEmpty {
			continue
		}

		sb.WriteString(fmt.Sprintf("[%s]\n", strings.ToUpper(category.String())))
		findings := summary.FindingsByCategory(category)
		if len(findings) == 0 {
			sb.WriteString("  No findings\n\n")
			continue
		}

		for _, f := range findings {
			sb.WriteString(fmt.Sprintf("  * %-6d %s\n", f.Port, f.Identity))
			if w.verbose {
				sb.WriteString(fmt.Sprintf("    Auth:   %s\n", f.Auth))
				sb.WriteString(fmt.Sprintf("    Rebind: %s\n", f.Rebind))
				if f.Impact != "" {
					sb.WriteString(fmt.Sprintf("    Impact: %s\n", f.Impact))
				}
			}
		}
		sb.WriteString("\n")
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by localtap\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
