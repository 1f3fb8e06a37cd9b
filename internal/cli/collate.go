package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/sotd/internal/model"
	"github.com/ppiankov/sotd/internal/pipeline"
	"github.com/ppiankov/sotd/internal/source"
)

var (
	monthFlag   string
	inputFiles  []string
	outJSON     string
	outMD       string
	workers     int
	noCache     bool
	timeout     time.Duration
	httpProxy   string
	httpsProxy  string
	recentCount int
)

// collateCmd represents the collate command
var collateCmd = &cobra.Command{
	Use:   "collate",
	Short: "Tally a month of SOTD threads",
	Long: `Collate fetches every SOTD thread of a month, extracts the razor and
brush from each comment, resolves them to canonical names and tallies the
results. Saved threads can be collated instead with --file.

Example:
  sotd collate --month 2025-01 --md jan.md
  sotd collate --file saved/jan06.html --file saved/jan07.json --json out.json`,
	RunE: runCollate,
}

// threadsCmd represents the threads command
var threadsCmd = &cobra.Command{
	Use:   "threads",
	Short: "List SOTD threads for a month",
	Long: `Threads lists the SOTD threads of a month, or the most recent ones
with --recent.

Example:
  sotd threads --month 2025-01
  sotd threads --recent 7`,
	RunE: runThreads,
}

func init() {
	rootCmd.AddCommand(collateCmd)
	rootCmd.AddCommand(threadsCmd)

	collateCmd.Flags().StringVar(&monthFlag, "month", "", "month to collate as YYYY-MM (default: previous month)")
	collateCmd.Flags().StringSliceVar(&inputFiles, "file", nil, "collate saved .json, .yaml or .html threads instead of fetching")
	collateCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	collateCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")
	addFetchFlags(collateCmd)

	threadsCmd.Flags().StringVar(&monthFlag, "month", "", "month as YYYY-MM (default: previous month)")
	threadsCmd.Flags().IntVar(&recentCount, "recent", 0, "list the N most recent threads instead")
	addFetchFlags(threadsCmd)
}

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&workers, "workers", 0, "classification workers (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "overall timeout")
	cmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	cmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

// commandConfig loads the configuration and overlays flags set on cmd
func commandConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Concurrency.Workers = workers
	}
	if flags.Changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if flags.Changed("http-proxy") {
		cfg.Source.HTTPProxy = httpProxy
	}
	if flags.Changed("https-proxy") {
		cfg.Source.HTTPSProxy = httpsProxy
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	return cfg, nil
}

// parseMonth parses YYYY-MM, defaulting to the month before now
func parseMonth(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return pipeline.PreviousMonth(now), nil
	}
	month, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return month, nil
}

func runCollate(cmd *cobra.Command, args []string) error {
	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	p := pipeline.NewPipeline(cfg)

	var report *model.Report
	if len(inputFiles) > 0 {
		report, err = collateFiles(ctx, p, inputFiles)
	} else {
		var month time.Time
		month, err = parseMonth(monthFlag, time.Now())
		if err != nil {
			return err
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "Collating r/%s for %s\n", cfg.Source.Subreddit, month.Format("January 2006"))
		}
		report, err = p.CollateMonth(ctx, month)
	}
	if err != nil {
		return fmt.Errorf("collate failed: %w", err)
	}

	if err := p.RenderReport(report, outJSON, outMD, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

func collateFiles(ctx context.Context, p *pipeline.Pipeline, paths []string) (*model.Report, error) {
	var comments []model.Comment
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		fileComments, err := source.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		comments = append(comments, fileComments...)
		names = append(names, filepath.Base(path))
	}
	return p.CollateComments(ctx, "SOTD "+strings.Join(names, ", "), len(paths), comments)
}

func runThreads(cmd *cobra.Command, args []string) error {
	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reddit := pipeline.NewRedditSource(cfg)

	var threads []model.Thread
	if recentCount > 0 {
		threads, err = reddit.RecentThreads(ctx, recentCount)
	} else {
		var month time.Time
		month, err = parseMonth(monthFlag, time.Now())
		if err != nil {
			return err
		}
		threads, err = reddit.ThreadsForMonth(ctx, month)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, t := range threads {
		fmt.Fprintf(out, "%s  %-8s  %s\n", t.Created.Format("2006-01-02"), t.ID, t.Title)
	}
	if len(threads) == 0 {
		fmt.Fprintln(os.Stderr, "No SOTD threads found")
	}
	return nil
}
