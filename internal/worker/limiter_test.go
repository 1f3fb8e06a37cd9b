package worker

import (
	"context"
	"testing"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected default burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "https://www.reddit.com/r/wetshaving/search.json"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "https://old.reddit.com/comments/abc.json"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := NewLimiter(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())

	if err := limiter.Wait(ctx, "https://www.reddit.com/a"); err != nil {
		t.Fatalf("first wait should use the burst token: %v", err)
	}

	cancel()
	if err := limiter.Wait(ctx, "https://www.reddit.com/b"); err == nil {
		t.Error("expected error waiting with a cancelled context")
	}
}

func TestLimiter_PerHost(t *testing.T) {
	limiter := NewLimiter(1, 1)
	ctx := context.Background()
	url := "https://www.reddit.com/r/wetshaving"

	if err := limiter.Wait(ctx, url); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	if limiter.Allow(url) {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	if !limiter.Allow("https://old.reddit.com/r/wetshaving") {
		t.Errorf("expected allow for other host")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	limiter := NewLimiter(10, 10)
	host := "slow.example.com"

	limiter.SetHostRate(host, 0.1, 1)

	if !limiter.Allow("http://" + host) {
		t.Errorf("first request should pass")
	}
	if limiter.Allow("http://" + host) {
		t.Errorf("second request should fail")
	}
	if !limiter.Allow("http://fast.example.com") {
		t.Errorf("other host should pass")
	}
}

func TestHostOf(t *testing.T) {
	host, err := hostOf("https://www.reddit.com/comments/abc.json?limit=500")
	if err != nil {
		t.Fatalf("hostOf failed: %v", err)
	}
	if host != "www.reddit.com" {
		t.Errorf("expected www.reddit.com, got %s", host)
	}

	if _, err := hostOf("::invalid"); err == nil {
		t.Errorf("expected error for invalid URL")
	}
	if _, err := hostOf("/relative/path"); err == nil {
		t.Errorf("expected error for URL without host")
	}
	if limiter := NewLimiter(1, 1); limiter.Allow("/relative/path") {
		t.Errorf("expected allow to fail for URL without host")
	}
}
