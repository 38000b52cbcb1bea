package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs summaries in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the summary in Markdown format.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, summary)
	w.writeOverview(md, summary)
	w.writeFindings(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, summary *Summary) {
	md.H1("LocalTap Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Scan Date", summary.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Baseline", strconv.FormatFloat(summary.BaselineMillis, 'f', 1, 64) + " ms"},
			{"Ports Probed", strconv.Itoa(summary.Total)},
			{"Reachable", strconv.Itoa(summary.OpenCount)},
			{"Status", w.getStatusText(summary)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on summary state.
func (w *MarkdownWriter) getStatusText(summary *Summary) string {
	if summary.Inconclusive {
		return "⚠️ Inconclusive (uniform result)"
	}
	if summary.Cancelled {
		return "⚠️ Cancelled (partial results)"
	}
	return "✅ Complete"
}

// writeOverview writes the category distribution and an alert.
func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, summary *Summary) {
	md.H2("Category Summary")
	md.PlainText("")

	counts := summary.CountByCategory()
	rows := make([][]string, 0, len(counts))
	for _, category := range orderedCategories() {
		if counts[category] == 0 {
			continue
		}
		rows = append(rows, []string{category.String(), strconv.Itoa(counts[category])})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(summary.OpenCount) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Reachable"},
		Rows:   rows,
	})
	md.PlainText("")

	if summary.HasFindings() {
		w.writePieChart(md, summary)
	}

	w.writeAlert(md, summary)
}

// writePieChart writes a mermaid pie chart of the category distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Reachable Services by Category"),
		piechart.WithShowData(true),
	)

	counts := summary.CountByCategory()
	for _, category := range orderedCategories() {
		if counts[category] > 0 {
			chart.LabelAndIntValue(category.String(), uint64(counts[category]))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the summary.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary *Summary) {
	switch {
	case summary.Inconclusive:
		md.Warning(
			"Every probed port classified open. The environment likely blocks " +
				"timing discrimination; treat these results as unreliable.",
		)
	case summary.OpenCount > 0:
		md.Importantf(
			"%d local service(s) are reachable from this host. Any of them a "+
				"malicious web page can also reach via your browser.",
			summary.OpenCount,
		)
	default:
		md.Tip("No reachable local services detected.")
	}
	md.PlainText("")
}

// writeFindings writes the per-service findings table.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, summary *Summary) {
	md.H2("Reachable Services")
	md.PlainText("")

	if !summary.HasFindings() {
		md.PlainText("No reachable services detected.")
		md.PlainText("")
		return
	}

	headers := []string{"Port", "Service", "Auth", "Rebind", "Impact"}

	rows := make([][]string, len(summary.Findings))
	for i, f := range summary.Findings {
		impact := f.Impact
		if impact == "" {
			impact = "-"
		}

		rows[i] = []string{
			strconv.Itoa(f.Port),
			f.Identity,
			f.Auth.String(),
			f.Rebind.String(),
			truncateString(impact, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: headers,
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by localtap*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return strings.TrimRight(s[:maxLen-3], " ") + "..."
}
