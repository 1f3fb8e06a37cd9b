// Package extract pulls product names and razor plates out of free-form
// shave-of-the-day comments.
package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// nameChars is the set of characters a typed product name may contain
const nameChars = `\w\t ./\-_()#;&'"|<>:$~`

// Template recovers a product name from comment text with its first capture group
type Template struct {
	Name string
	Re   *regexp.Regexp
}

// Filter rejects a captured candidate that is known to be a false positive
type Filter struct {
	Name   string
	Reject func(candidate string) bool
}

// FieldExtractor finds the product name typed for one field (razor, brush)
type FieldExtractor struct {
	field     string
	templates []Template
	filters   []Filter
}

// NewFieldExtractor creates an extractor for a field.
// Templates are ordered from most generic to most specific.
func NewFieldExtractor(field string, templates []Template, filters []Filter) *FieldExtractor {
	return &FieldExtractor{
		field:     field,
		templates: templates,
		filters:   filters,
	}
}

// NewRazorExtractor creates the extractor for the razor field
func NewRazorExtractor() *FieldExtractor {
	return NewFieldExtractor("razor", labelTemplates(`Razor`, `Safety Razor`), []Filter{
		// "Razor and Blade Notes" headings are not razor names
		ContainsFilter("blade-notes", "and blade note"),
		// Razorock written as "Razor ock" splits on the label
		PrefixFilter("razorock", "ock"),
	})
}

// NewBrushExtractor creates the extractor for the brush field
func NewBrushExtractor() *FieldExtractor {
	return NewFieldExtractor("brush", labelTemplates(`Brush`, `Shaving Brush`), []Filter{
		ContainsFilter("lather-notes", "and lather note"),
	})
}

// labelTemplates builds the posting formats seen in SOTD threads for a label:
//
//	Razor: Karve CB
//	*Razor*: **Karve CB**
//	**Safety Razor** - Karve CB
func labelTemplates(label string, longLabel string) []Template {
	return []Template{
		{
			Name: "label-line",
			Re: regexp.MustCompile(fmt.Sprintf(
				`(?mi)^[*\s\-+/]*%s\s*[:*\-\\+\s/]+\s*([%s]+)(?:\+|,|\n|$)`, label, nameChars)),
		},
		{
			Name: "bold-value",
			Re: regexp.MustCompile(fmt.Sprintf(
				`(?mi)\*%s\*:.*\*\*([%s]+)\*\*`, label, nameChars)),
		},
		{
			Name: "bold-label-dash",
			Re: regexp.MustCompile(fmt.Sprintf(
				`(?mi)^\*\*%s\*\*\s*-\s*([%s]+)[+,\n]`, longLabel, nameChars)),
		},
	}
}

// ContainsFilter rejects candidates containing phrase, ignoring case
func ContainsFilter(name string, phrase string) Filter {
	phrase = strings.ToLower(phrase)
	return Filter{
		Name: name,
		Reject: func(candidate string) bool {
			return strings.Contains(strings.ToLower(candidate), phrase)
		},
	}
}

// PrefixFilter rejects candidates that start with prefix
func PrefixFilter(name string, prefix string) Filter {
	return Filter{
		Name: name,
		Reject: func(candidate string) bool {
			return strings.HasPrefix(candidate, prefix)
		},
	}
}

// Field returns the field name
func (e *FieldExtractor) Field() string {
	return e.field
}

// Extract returns the product name as typed in the comment.
//
// Every template is tried. The last one whose candidate passes all filters
// wins, so more specific formats later in the list override the generic
// line format.
func (e *FieldExtractor) Extract(comment string) (string, bool) {
	text := strings.ReplaceAll(ToASCII(comment), "\r\n", "\n")

	var extracted string
	for _, tmpl := range e.templates {
		m := tmpl.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if e.rejected(m[1]) {
			continue
		}
		if name := cleanName(m[1]); name != "" {
			extracted = name
		}
	}

	return extracted, extracted != ""
}

func (e *FieldExtractor) rejected(candidate string) bool {
	for _, f := range e.filters {
		if f.Reject(candidate) {
			return true
		}
	}
	return false
}

// cleanName trims whitespace and dangling separators around a captured name
func cleanName(s string) string {
	return strings.Trim(s, " \t-:;|/")
}
