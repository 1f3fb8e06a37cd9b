package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/sotd/internal/cache"
	"github.com/ppiankov/sotd/internal/model"
	"github.com/ppiankov/sotd/internal/source"
	"github.com/ppiankov/sotd/internal/worker"
)

// Pipeline collects SOTD comments and tallies the products they name
type Pipeline struct {
	source     source.ThreadSource
	classifier *Classifier
	batch      *worker.BatchProcessor
	renderer   *Renderer
	config     *model.Config
	stderr     io.Writer
}

// NewPipeline creates a pipeline reading threads from Reddit
func NewPipeline(cfg *model.Config) *Pipeline {
	return NewPipelineWithSource(cfg, NewRedditSource(cfg))
}

// NewPipelineWithSource creates a pipeline reading threads from src
func NewPipelineWithSource(cfg *model.Config, src source.ThreadSource) *Pipeline {
	classifier := NewClassifier()
	return &Pipeline{
		source:     src,
		classifier: classifier,
		batch:      worker.NewBatchProcessor(classifier, cfg.Concurrency.Workers),
		renderer:   NewRenderer(cfg.Output.Top),
		config:     cfg,
		stderr:     os.Stderr,
	}
}

// NewRedditSource wires a rate limited, robots-aware, cached Reddit client
func NewRedditSource(cfg *model.Config) *source.Reddit {
	opts := []source.FetcherOption{
		source.WithLimiter(worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)),
		source.WithProxy(cfg.Source.HTTPProxy, cfg.Source.HTTPSProxy, cfg.Source.NoProxy),
	}
	if cfg.Source.RespectRobots {
		opts = append(opts, source.WithRobots(source.NewRobotsChecker(cfg.Source.UserAgent, cfg.Source.Timeout)))
	}
	if cfg.Cache.Enabled {
		// TTL 0 lets each cache layer apply its own default
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		opts = append(opts, source.WithCache(layered, 0))
	}

	fetcher := source.NewFetcher(cfg.Source.Timeout, cfg.Source.UserAgent, cfg.Source.MaxBodyBytes, opts...)
	return source.NewReddit(fetcher, cfg.Source)
}

// Classifier returns the shared classifier
func (p *Pipeline) Classifier() *Classifier {
	return p.classifier
}

// Collect fetches every comment from the month's threads.
// A thread that fails to load is recorded in errs and skipped.
func (p *Pipeline) Collect(ctx context.Context, month time.Time) (threads []model.Thread, comments []model.Comment, errs []string, err error) {
	threads, err = p.source.ThreadsForMonth(ctx, month)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("find threads: %w", err)
	}

	for i, thread := range threads {
		if p.config.Output.Verbose {
			fmt.Fprintf(p.stderr, "[%d/%d] %s\n", i+1, len(threads), thread.Title)
		}

		threadComments, err := p.source.Comments(ctx, thread)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, nil, ctx.Err()
			}
			fmt.Fprintf(p.stderr, "Warning: skipping thread %s: %v\n", thread.ID, err)
			errs = append(errs, fmt.Sprintf("%s: %v", thread.ID, err))
			continue
		}
		comments = append(comments, threadComments...)
	}

	return threads, comments, errs, nil
}

// CollateMonth builds the usage report for month's SOTD threads
func (p *Pipeline) CollateMonth(ctx context.Context, month time.Time) (*model.Report, error) {
	threads, comments, errs, err := p.Collect(ctx, month)
	if err != nil {
		return nil, err
	}

	report, err := p.CollateComments(ctx, "SOTD "+month.Format("2006-01"), len(threads), comments)
	if err != nil {
		return nil, err
	}
	report.Month = month.Format("2006-01")
	report.Errors = errs
	return report, nil
}

// CollateComments classifies comments and tallies the results
func (p *Pipeline) CollateComments(ctx context.Context, subject string, threads int, comments []model.Comment) (*model.Report, error) {
	shaves, err := p.batch.ProcessComments(ctx, comments)
	if err != nil {
		return nil, err
	}
	return Tally(subject, "", threads, shaves), nil
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(p.stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(p.stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(p.stderr, report)
	return nil
}

// PreviousMonth returns the first day of the calendar month before now
func PreviousMonth(now time.Time) time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -1, 0)
}
