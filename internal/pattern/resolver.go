package pattern

import (
	"github.com/ppiankov/sotd/internal/cache"
)

// Shortcut recognizes a canonical name without consulting any table.
// Shortcuts run after normalization and before the first tier.
type Shortcut func(text string) (string, bool)

// Resolver selects the single best canonical name for a piece of free text
type Resolver struct {
	name      string
	tiers     []Tier
	normalize func(string) string
	shortcuts []Shortcut
	memo      cache.Cache
}

// Option configures a Resolver
type Option func(*Resolver)

// WithNormalizer rewrites text before shortcuts and tiers see it
func WithNormalizer(fn func(string) string) Option {
	return func(r *Resolver) {
		r.normalize = fn
	}
}

// WithShortcut adds a shortcut evaluated ahead of every tier
func WithShortcut(s Shortcut) Option {
	return func(r *Resolver) {
		r.shortcuts = append(r.shortcuts, s)
	}
}

// WithMemo sets the cache used to memoize results. A nil cache disables memoization.
func WithMemo(c cache.Cache) Option {
	return func(r *Resolver) {
		r.memo = c
	}
}

// NewResolver creates a resolver over the given tiers, evaluated in order.
// Results are memoized in a process-lifetime memory cache unless overridden.
func NewResolver(name string, tiers []Tier, opts ...Option) *Resolver {
	r := &Resolver{
		name:  name,
		tiers: tiers,
		memo:  cache.NewMemo(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the resolver name
func (r *Resolver) Name() string {
	return r.name
}

// Resolve returns the canonical name for text, or false when nothing matches.
// No match is an expected outcome, not an error.
func (r *Resolver) Resolve(text string) (string, bool) {
	var key string
	if r.memo != nil {
		key = cache.CacheKey(r.name, text)
		if val, found := r.memo.Get(key); found {
			// An empty entry memoizes absence
			return string(val), len(val) > 0
		}
	}

	canonical, ok := r.resolve(text)

	if r.memo != nil {
		_ = r.memo.Set(key, []byte(canonical), 0)
	}
	return canonical, ok
}

func (r *Resolver) resolve(text string) (string, bool) {
	if r.normalize != nil {
		text = r.normalize(text)
	}

	for _, s := range r.shortcuts {
		if canonical, ok := s(text); ok {
			return canonical, true
		}
	}

	// A later tier is not touched until every earlier tier has missed
	for _, tier := range r.tiers {
		if canonical, ok := tier.Table().Match(text); ok {
			return canonical, true
		}
	}

	return "", false
}
