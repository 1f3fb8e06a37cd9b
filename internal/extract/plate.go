package extract

import (
	"regexp"
)

// Resolver maps a raw product name to its canonical name
type Resolver interface {
	Resolve(text string) (string, bool)
}

var (
	// A plate letter must stand alone: after whitespace, "(" or "-", and
	// before whitespace, ")", "-plate" or the end of the name
	plateRe = regexp.MustCompile(`(?i)[\s(\-]([A-G])(?:$|\s|-plate|\))`)
	ocRe    = regexp.MustCompile(`(?i)\sOC(?:\s|$|\))`)
)

// PlateExtractor reports the plate of a razor with interchangeable plates,
// for example "D SB" or "C OC"
type PlateExtractor struct {
	names  *FieldExtractor
	razors Resolver
	target string
}

// NewPlateExtractor creates a plate extractor that only answers for razors
// resolving to target
func NewPlateExtractor(names *FieldExtractor, razors Resolver, target string) *PlateExtractor {
	return &PlateExtractor{
		names:  names,
		razors: razors,
		target: target,
	}
}

// Extract returns "<plate> <OC|SB>" for the razor named in comment.
// Comments naming any other razor, or no recognizable plate, yield false.
func (p *PlateExtractor) Extract(comment string) (string, bool) {
	name, ok := p.names.Extract(comment)
	if !ok {
		return "", false
	}
	return p.FromName(name)
}

// FromName is Extract for an already extracted razor name
func (p *PlateExtractor) FromName(name string) (string, bool) {
	canonical, ok := p.razors.Resolve(name)
	if !ok || canonical != p.target {
		return "", false
	}

	m := plateRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}

	orientation := "SB"
	if ocRe.MatchString(name) {
		orientation = "OC"
	}

	return m[1] + " " + orientation, true
}
