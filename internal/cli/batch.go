package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/sotd/internal/model"
	"github.com/ppiankov/sotd/internal/pipeline"
	"github.com/ppiankov/sotd/internal/source"
	"github.com/ppiankov/sotd/internal/worker"
)

var batchOutputDir string

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Collate a list of threads and saved files into one report",
	Long: `Batch reads a list file with one entry per line. An entry that names an
existing file is loaded as a saved thread; anything else is taken as a
Reddit thread ID. Blank lines and lines starting with # are skipped.

Example:
  sotd batch threads.txt
  sotd batch threads.txt --output-dir ./reports --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./sotd-reports", "output directory for reports")
	addFetchFlags(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]

	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	entries, err := worker.ReadListFile(listFile)
	if err != nil {
		return fmt.Errorf("read list: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s (%d entries)\n", listFile, len(entries))
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", batchOutputDir)
	fmt.Fprintf(os.Stderr, "\n")

	reddit := pipeline.NewRedditSource(cfg)
	p := pipeline.NewPipelineWithSource(cfg, reddit)

	var comments []model.Comment
	var errs []string
	for _, entry := range entries {
		entryComments, err := loadEntry(ctx, reddit, entry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", entry, err)
			errs = append(errs, fmt.Sprintf("%s: %v", entry, err))
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s (%d comments)\n", entry, len(entryComments))
		comments = append(comments, entryComments...)
	}

	report, err := p.CollateComments(ctx, "SOTD "+filepath.Base(listFile), len(entries), comments)
	if err != nil {
		return fmt.Errorf("collate failed: %w", err)
	}
	report.Errors = errs

	if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	slug := sanitizeFilename(report.Subject)
	jsonPath := filepath.Join(batchOutputDir, slug+".json")
	mdPath := filepath.Join(batchOutputDir, slug+".md")
	if err := p.RenderReport(report, jsonPath, mdPath, true); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// loadEntry loads a saved thread file, or fetches the thread by ID
func loadEntry(ctx context.Context, threads source.ThreadSource, entry string) ([]model.Comment, error) {
	if info, err := os.Stat(entry); err == nil && !info.IsDir() {
		return source.LoadFile(entry)
	}
	return threads.Comments(ctx, model.Thread{ID: entry})
}

// sanitizeFilename makes a report subject safe to use as a file name
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		",", "",
		" ", "-",
	)
	s = replacer.Replace(s)

	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
