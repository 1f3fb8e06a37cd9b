package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/sotd/internal/model"
)

// counter accumulates shaves and distinct authors per name
type counter struct {
	shaves  map[string]int
	authors map[string]map[string]bool
}

func newCounter() *counter {
	return &counter{
		shaves:  make(map[string]int),
		authors: make(map[string]map[string]bool),
	}
}

func (c *counter) add(name, author string) {
	if name == "" {
		return
	}
	c.shaves[name]++
	if author == "" {
		return
	}
	if c.authors[name] == nil {
		c.authors[name] = make(map[string]bool)
	}
	c.authors[name][strings.ToLower(author)] = true
}

// tallies returns one row per name, most shaves first, then by name
func (c *counter) tallies() []model.Tally {
	rows := make([]model.Tally, 0, len(c.shaves))
	for name, n := range c.shaves {
		rows = append(rows, model.Tally{
			Name:    name,
			Shaves:  n,
			Authors: len(c.authors[name]),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Shaves != rows[j].Shaves {
			return rows[i].Shaves > rows[j].Shaves
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// Tally builds a usage report from classified shaves.
// Names that were extracted but not recognized are counted as typed.
func Tally(subject string, month string, threads int, shaves []model.Shave) *model.Report {
	razors := newCounter()
	brushes := newCounter()
	plates := newCounter()
	unknownRazors := newCounter()
	unknownBrushes := newCounter()

	for _, s := range shaves {
		razors.add(s.Razor, s.Author)
		brushes.add(s.Brush, s.Author)
		plates.add(s.Plate, s.Author)

		if s.Razor == "" {
			unknownRazors.add(s.RawRazor, s.Author)
		}
		if s.Brush == "" {
			unknownBrushes.add(s.RawBrush, s.Author)
		}
	}

	return &model.Report{
		RunID:               uuid.New().String(),
		Subject:             subject,
		Month:               month,
		GeneratedAt:         time.Now().UTC(),
		Threads:             threads,
		Comments:            len(shaves),
		Razors:              razors.tallies(),
		Brushes:             brushes.tallies(),
		Plates:              plates.tallies(),
		UnrecognizedRazors:  unknownRazors.tallies(),
		UnrecognizedBrushes: unknownBrushes.tallies(),
	}
}
