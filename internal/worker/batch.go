package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/sotd/internal/model"
)

// Classifier recognizes the products named in one comment.
// Implementations must be safe for concurrent use.
type Classifier interface {
	Classify(comment model.Comment) model.Shave
}

// ClassifyJob classifies one comment
type ClassifyJob struct {
	Index      int
	Comment    model.Comment
	Classifier Classifier
}

// Execute executes the classify job
func (j *ClassifyJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &ClassifyResult{Index: j.Index, Error: err}
	}
	return &ClassifyResult{
		Index: j.Index,
		Shave: j.Classifier.Classify(j.Comment),
	}
}

// ClassifyResult is the outcome of a classify job
type ClassifyResult struct {
	Index int
	Shave model.Shave
	Error error
}

// GetError returns the error from the classify result
func (r *ClassifyResult) GetError() error {
	return r.Error
}

// BatchProcessor classifies comments concurrently
type BatchProcessor struct {
	classifier  Classifier
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(classifier Classifier, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		classifier:  classifier,
		concurrency: concurrency,
	}
}

// ProcessComments classifies comments across the worker pool.
// Shaves come back in the order of comments.
func (b *BatchProcessor) ProcessComments(ctx context.Context, comments []model.Comment) ([]model.Shave, error) {
	if len(comments) == 0 {
		return []model.Shave{}, nil
	}

	pool := NewPoolWithContext(ctx, b.concurrency)
	pool.Start()

	go func() {
		for i, comment := range comments {
			pool.Submit(&ClassifyJob{
				Index:      i,
				Comment:    comment,
				Classifier: b.classifier,
			})
		}
		pool.Close()
	}()

	shaves := make([]model.Shave, len(comments))
	for result := range pool.Results() {
		r := result.(*ClassifyResult)
		if r.Error != nil {
			continue
		}
		shaves[r.Index] = r.Shave
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classify comments: %w", err)
	}
	return shaves, nil
}

// ReadListFile reads one entry per line, skipping blanks, # comments and
// repeats
func ReadListFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var entries []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			entries = append(entries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return entries, nil
}
