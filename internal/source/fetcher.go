package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ppiankov/sotd/internal/cache"
	"github.com/ppiankov/sotd/internal/worker"
)

// ErrDisallowed is returned when robots.txt forbids a URL
var ErrDisallowed = errors.New("disallowed by robots.txt")

// fetchSleepFunc is swapped out by tests to skip backoff delays
var fetchSleepFunc = time.Sleep

const maxAttempts = 3

// Fetcher performs polite, cached GET requests
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	limiter    *worker.Limiter
	robots     *RobotsChecker // nil skips robots.txt checks
	cache      cache.Cache    // nil disables caching
	cacheTTL   time.Duration
}

// FetcherOption configures a Fetcher
type FetcherOption func(*Fetcher)

// WithLimiter throttles requests per host
func WithLimiter(l *worker.Limiter) FetcherOption {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithRobots checks robots.txt before each uncached request
func WithRobots(r *RobotsChecker) FetcherOption {
	return func(f *Fetcher) {
		f.robots = r
	}
}

// WithCache stores response bodies under their URL
func WithCache(c cache.Cache, ttl time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.cache = c
		f.cacheTTL = ttl
	}
}

// NewFetcher creates a new Fetcher
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// statusError is a non-2xx response
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d %s", e.code, e.status)
}

func (e *statusError) retryable() bool {
	return e.code == http.StatusTooManyRequests || e.code >= 500
}

// Fetch returns the body at rawURL, from cache when possible.
// Rate limiting (429) and server errors are retried with backoff.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	key := cache.CacheKey("http", rawURL)
	if f.cache != nil {
		if body, found := f.cache.Get(key); found {
			return body, nil
		}
	}

	if f.robots != nil {
		allowed, err := f.robots.Allowed(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("%s: %w", rawURL, ErrDisallowed)
		}
	}

	var body []byte
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, err = f.get(ctx, rawURL)
		if err == nil {
			break
		}

		var se *statusError
		if !errors.As(err, &se) || !se.retryable() || attempt == maxAttempts {
			return nil, err
		}
		fetchSleepFunc(time.Duration(attempt*attempt) * time.Second)
	}

	if f.cache != nil {
		// A cache write failure only costs a refetch later
		_ = f.cache.Set(key, body, f.cacheTTL)
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
