package pipeline

import (
	"github.com/ppiankov/sotd/internal/cache"
	"github.com/ppiankov/sotd/internal/catalog"
	"github.com/ppiankov/sotd/internal/extract"
	"github.com/ppiankov/sotd/internal/model"
	"github.com/ppiankov/sotd/internal/pattern"
)

// Classifier recognizes the razor, brush and plate named in a comment.
// It is safe for concurrent use.
type Classifier struct {
	razorNames *extract.FieldExtractor
	brushNames *extract.FieldExtractor
	razors     *pattern.Resolver
	brushes    *pattern.Resolver
	plates     *extract.PlateExtractor
}

// NewClassifier creates a classifier over the built-in catalog
func NewClassifier() *Classifier {
	razorNames := extract.NewRazorExtractor()
	razors := catalog.NewRazorResolver(cache.NewMemo())

	return &Classifier{
		razorNames: razorNames,
		brushNames: extract.NewBrushExtractor(),
		razors:     razors,
		brushes:    catalog.NewBrushResolver(cache.NewMemo()),
		plates:     extract.NewPlateExtractor(razorNames, razors, catalog.KarveCB),
	}
}

// Razors returns the razor resolver
func (c *Classifier) Razors() *pattern.Resolver {
	return c.razors
}

// Brushes returns the brush resolver
func (c *Classifier) Brushes() *pattern.Resolver {
	return c.brushes
}

// Plates returns the plate extractor
func (c *Classifier) Plates() *extract.PlateExtractor {
	return c.plates
}

// Classify extracts and canonicalizes the products in one comment
func (c *Classifier) Classify(comment model.Comment) model.Shave {
	shave := model.Shave{
		CommentID: comment.ID,
		Author:    comment.Author,
	}

	if raw, ok := c.razorNames.Extract(comment.Body); ok {
		shave.RawRazor = raw
		shave.Razor, _ = c.razors.Resolve(raw)
		shave.Plate, _ = c.plates.FromName(raw)
	}

	if raw, ok := c.brushNames.Extract(comment.Body); ok {
		shave.RawBrush = raw
		shave.Brush, _ = c.brushes.Resolve(raw)
	}

	return shave
}
