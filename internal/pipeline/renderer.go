package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/sotd/internal/model"
)

// Renderer writes reports as JSON, Markdown and a short terminal summary
type Renderer struct {
	top int // rows per Markdown table, 0 = all
}

// NewRenderer creates a new renderer
func NewRenderer(top int) *Renderer {
	return &Renderer{top: top}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// RenderMarkdown writes the report as Markdown tables
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var buf strings.Builder
	r.WriteMarkdown(&buf, report)
	return writeFile(path, []byte(buf.String()))
}

// WriteMarkdown renders the report as Markdown into w
func (r *Renderer) WriteMarkdown(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "# %s\n\n", report.Subject)
	fmt.Fprintf(w, "Threads: %d  \nComments: %d  \nGenerated: %s\n",
		report.Threads, report.Comments, report.GeneratedAt.Format("2006-01-02 15:04 MST"))

	r.writeTable(w, "Razors", "Razor", report.Razors)
	r.writeTable(w, "Karve CB Plates", "Plate", report.Plates)
	r.writeTable(w, "Brushes", "Brush", report.Brushes)
	r.writeTable(w, "Unrecognized Razors", "As written", report.UnrecognizedRazors)
	r.writeTable(w, "Unrecognized Brushes", "As written", report.UnrecognizedBrushes)

	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "\n## Collection Errors\n\n")
		for _, e := range report.Errors {
			fmt.Fprintf(w, "- %s\n", e)
		}
	}

	if report.RunID != "" {
		fmt.Fprintf(w, "\n---\n_Run %s_\n", report.RunID)
	}
}

func (r *Renderer) writeTable(w io.Writer, title string, column string, rows []model.Tally) {
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(w, "\n## %s\n\n", title)
	fmt.Fprintf(w, "| Rank | %s | Shaves | Users |\n", column)
	fmt.Fprintf(w, "|-----:|%s|-------:|------:|\n", strings.Repeat("-", len(column)+2))

	for i, row := range rows {
		if r.top > 0 && i >= r.top {
			fmt.Fprintf(w, "\n_%d more not shown._\n", len(rows)-r.top)
			break
		}
		fmt.Fprintf(w, "| %d | %s | %d | %d |\n", i+1, escapeCell(row.Name), row.Shaves, row.Authors)
	}
}

// RenderSummary prints the top entries of each table
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "%s: %d comments in %d threads\n", report.Subject, report.Comments, report.Threads)
	summarize(w, "razors", report.Razors)
	summarize(w, "brushes", report.Brushes)
	summarize(w, "plates", report.Plates)

	unknown := len(report.UnrecognizedRazors) + len(report.UnrecognizedBrushes)
	if unknown > 0 {
		fmt.Fprintf(w, "  %d unrecognized names\n", unknown)
	}
	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "  %d collection errors\n", len(report.Errors))
	}
}

func summarize(w io.Writer, label string, rows []model.Tally) {
	if len(rows) == 0 {
		return
	}
	var top []string
	for i, row := range rows {
		if i == 3 {
			break
		}
		top = append(top, fmt.Sprintf("%s (%d)", row.Name, row.Shaves))
	}
	fmt.Fprintf(w, "  %d %s, top: %s\n", len(rows), label, strings.Join(top, ", "))
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
