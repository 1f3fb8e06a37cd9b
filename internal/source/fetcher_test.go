package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/sotd/internal/cache"
	"github.com/ppiankov/sotd/internal/worker"
)

func noSleep(t *testing.T) {
	t.Helper()
	origSleep := fetchSleepFunc
	fetchSleepFunc = func(d time.Duration) {}
	t.Cleanup(func() { fetchSleepFunc = origSleep })
}

func TestFetch_Success(t *testing.T) {
	var userAgent atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent.Store(r.Header.Get("User-Agent"))
		_, _ = fmt.Fprint(w, `{"ok":true}`)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "test-agent", 1<<20)
	body, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("Unexpected body: %s", body)
	}
	if got, _ := userAgent.Load().(string); got != "test-agent" {
		t.Errorf("Expected User-Agent test-agent, got %q", got)
	}
}

func TestFetch_TransientThenSuccess(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "test-agent", 1<<20)
	body, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected success after retries, got %v", err)
	}
	if string(body) != "OK" {
		t.Errorf("Unexpected body: %s", body)
	}
	if attempts.Load() != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts.Load())
	}
}

func TestFetch_429Retried(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "test-agent", 1<<20)
	if _, err := fetcher.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Expected success after 429 retry, got %v", err)
	}
	if attempts.Load() != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts.Load())
	}
}

func TestFetch_PermanentFailure(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "test-agent", 1<<20)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for 404, got nil")
	}
	if got := err.Error(); got != "unexpected status: 404 404 Not Found" {
		t.Errorf("Unexpected error: %s", got)
	}
	if attempts.Load() != 1 {
		t.Errorf("Expected 404 not to be retried, got %d attempts", attempts.Load())
	}
}

func TestFetch_AllRetriesExhausted(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "test-agent", 1<<20)
	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("Expected error after all retries exhausted")
	}
	if attempts.Load() != maxAttempts {
		t.Errorf("Expected %d attempts, got %d", maxAttempts, attempts.Load())
	}
}

func TestFetch_BodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "0123456789")
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "test-agent", 4)
	body, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(body) != "0123" {
		t.Errorf("Expected truncated body 0123, got %q", body)
	}
}

func TestFetch_Cached(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "test-agent", 1<<20,
		WithCache(cache.NewMemoryCache(time.Minute, time.Minute), time.Minute))

	for i := 0; i < 3; i++ {
		body, err := fetcher.Fetch(context.Background(), server.URL+"/thread")
		if err != nil {
			t.Fatalf("Fetch %d failed: %v", i, err)
		}
		if string(body) != "OK" {
			t.Errorf("Unexpected body: %s", body)
		}
	}
	if attempts.Load() != 1 {
		t.Errorf("Expected 1 request with cache, got %d", attempts.Load())
	}
}

func TestFetch_RobotsDisallowed(t *testing.T) {
	var pageHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
			return
		}
		pageHits.Add(1)
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "test-agent/1.0", 1<<20,
		WithRobots(NewRobotsChecker("test-agent/1.0", 5*time.Second)))

	_, err := fetcher.Fetch(context.Background(), server.URL+"/private/page")
	if !errors.Is(err, ErrDisallowed) {
		t.Errorf("Expected ErrDisallowed, got %v", err)
	}

	if _, err := fetcher.Fetch(context.Background(), server.URL+"/public/page"); err != nil {
		t.Errorf("Expected public page to be allowed, got %v", err)
	}
	if pageHits.Load() != 1 {
		t.Errorf("Expected 1 page request, got %d", pageHits.Load())
	}
}

func TestFetch_RobotsMissingAllowsAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "test-agent", 1<<20,
		WithRobots(NewRobotsChecker("test-agent", 5*time.Second)))
	if _, err := fetcher.Fetch(context.Background(), server.URL+"/anything"); err != nil {
		t.Errorf("Expected fetch to succeed without robots.txt, got %v", err)
	}
}

func TestFetch_WithLimiter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	fetcher := NewFetcher(5*time.Second, "test-agent", 1<<20,
		WithLimiter(worker.NewLimiter(0.001, 1)))

	if _, err := fetcher.Fetch(ctx, server.URL); err != nil {
		t.Fatalf("First fetch should use the burst token, got %v", err)
	}

	cancel()
	if _, err := fetcher.Fetch(ctx, server.URL); err == nil {
		t.Error("Expected rate-limited fetch to fail once the context is cancelled")
	}
}

func TestProductToken(t *testing.T) {
	tests := []struct {
		ua       string
		expected string
	}{
		{"sotd/0.1 (+https://github.com/ppiankov/sotd)", "sotd"},
		{"test-agent", "test-agent"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := productToken(tt.ua); got != tt.expected {
			t.Errorf("productToken(%q) = %q, want %q", tt.ua, got, tt.expected)
		}
	}
}
