package pattern

import (
	"sync"
	"sync/atomic"
)

// Tier supplies one table of a resolver's ordered tiers
type Tier interface {
	Table() *Table
}

type staticTier struct {
	table *Table
}

func (s staticTier) Table() *Table {
	return s.table
}

// Static wraps an already built table
func Static(t *Table) Tier {
	return staticTier{table: t}
}

// LazyTier builds its table on first use and caches it for the life of the process
type LazyTier struct {
	build func() *Table
	once  sync.Once
	built atomic.Bool
	table *Table
}

// Lazy returns a tier whose table is built by build on first access
func Lazy(build func() *Table) *LazyTier {
	return &LazyTier{build: build}
}

// Table builds the table if needed and returns it
func (l *LazyTier) Table() *Table {
	l.once.Do(func() {
		l.table = l.build()
		l.built.Store(true)
	})
	return l.table
}

// Built reports whether the table has been constructed yet
func (l *LazyTier) Built() bool {
	return l.built.Load()
}
