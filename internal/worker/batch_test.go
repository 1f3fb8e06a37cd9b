package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/sotd/internal/model"
)

// mockClassifier echoes the comment body as the razor name
type mockClassifier struct {
	calls atomic.Int32
	delay time.Duration
}

func (m *mockClassifier) Classify(comment model.Comment) model.Shave {
	m.calls.Add(1)
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return model.Shave{
		CommentID: comment.ID,
		Author:    comment.Author,
		Razor:     strings.ToUpper(comment.Body),
	}
}

func makeComments(n int) []model.Comment {
	comments := make([]model.Comment, n)
	for i := range comments {
		comments[i] = model.Comment{
			ID:     fmt.Sprintf("c%d", i),
			Author: fmt.Sprintf("user%d", i%7),
			Body:   fmt.Sprintf("razor %d", i),
		}
	}
	return comments
}

func TestBatchProcessor_ProcessComments(t *testing.T) {
	classifier := &mockClassifier{}
	processor := NewBatchProcessor(classifier, 4)

	comments := makeComments(200)
	shaves, err := processor.ProcessComments(context.Background(), comments)
	if err != nil {
		t.Fatalf("ProcessComments failed: %v", err)
	}

	if len(shaves) != len(comments) {
		t.Fatalf("expected %d shaves, got %d", len(comments), len(shaves))
	}
	for i, shave := range shaves {
		if shave.CommentID != comments[i].ID {
			t.Errorf("shave %d out of order: expected %s, got %s", i, comments[i].ID, shave.CommentID)
		}
		if shave.Razor != strings.ToUpper(comments[i].Body) {
			t.Errorf("shave %d: unexpected razor %q", i, shave.Razor)
		}
	}
	if classifier.calls.Load() != int32(len(comments)) {
		t.Errorf("expected %d classify calls, got %d", len(comments), classifier.calls.Load())
	}
}

func TestBatchProcessor_ProcessComments_Empty(t *testing.T) {
	processor := NewBatchProcessor(&mockClassifier{}, 2)

	shaves, err := processor.ProcessComments(context.Background(), nil)
	if err != nil {
		t.Fatalf("ProcessComments failed: %v", err)
	}
	if len(shaves) != 0 {
		t.Errorf("expected 0 shaves, got %d", len(shaves))
	}
}

func TestBatchProcessor_ProcessComments_Cancelled(t *testing.T) {
	processor := NewBatchProcessor(&mockClassifier{delay: 10 * time.Millisecond}, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := processor.ProcessComments(ctx, makeComments(50))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestClassifyJob_Execute(t *testing.T) {
	job := &ClassifyJob{
		Index:      3,
		Comment:    model.Comment{ID: "c3", Body: "tech"},
		Classifier: &mockClassifier{},
	}

	result := job.Execute(context.Background()).(*ClassifyResult)
	if result.GetError() != nil {
		t.Fatalf("unexpected error: %v", result.GetError())
	}
	if result.Index != 3 || result.Shave.Razor != "TECH" {
		t.Errorf("unexpected result: %+v", result)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if job.Execute(ctx).GetError() == nil {
		t.Error("expected error from cancelled job")
	}
}

func TestReadListFile(t *testing.T) {
	content := `jan6
# saved copies
threads/jan7.html
   
jan6
threads/jan8.json   `

	path := filepath.Join(t.TempDir(), "threads.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadListFile(path)
	if err != nil {
		t.Fatalf("ReadListFile failed: %v", err)
	}

	expected := []string{"jan6", "threads/jan7.html", "threads/jan8.json"}
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(entries))
	}
	for i, entry := range entries {
		if entry != expected[i] {
			t.Errorf("expected %s at index %d, got %s", expected[i], i, entry)
		}
	}
}

func TestReadListFile_NonExistent(t *testing.T) {
	if _, err := ReadListFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}
