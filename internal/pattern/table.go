// Package pattern resolves free text to a canonical product name using
// ordered tables of case-insensitive regular expression fragments.
//
// Precedence inside a table is longest pattern text first. Ties keep the
// order in which the rules were authored. Patterns are searched anywhere in
// the text; they are never anchored unless the fragment itself says so.
package pattern

import (
	"fmt"
	"regexp"
	"sort"
)

// Rule maps one regular expression fragment to a canonical name
type Rule struct {
	Canonical string `json:"canonical" yaml:"canonical"`
	Pattern   string `json:"pattern" yaml:"pattern"`
}

// Alias is the authoring form of a set of rules: one canonical name and
// every fragment that identifies it
type Alias struct {
	Canonical string
	Patterns  []string
}

// Flatten turns aliases into rules, preserving authoring order
func Flatten(aliases []Alias) []Rule {
	var rules []Rule
	for _, a := range aliases {
		for _, p := range a.Patterns {
			rules = append(rules, Rule{Canonical: a.Canonical, Pattern: p})
		}
	}
	return rules
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// Table is an immutable pattern -> canonical name mapping
type Table struct {
	name       string
	rules      []compiledRule // evaluation order
	duplicates []Rule
}

// NewTable compiles rules into a table.
//
// A pattern text authored twice keeps its first rule; later copies are
// dropped and reported by Duplicates.
func NewTable(name string, rules []Rule) (*Table, error) {
	t := &Table{name: name}
	seen := make(map[string]bool, len(rules))

	for _, r := range rules {
		if seen[r.Pattern] {
			t.duplicates = append(t.duplicates, r)
			continue
		}
		seen[r.Pattern] = true

		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("table %s: compile %q for %q: %w", name, r.Pattern, r.Canonical, err)
		}
		t.rules = append(t.rules, compiledRule{Rule: r, re: re})
	}

	// Stable sort keeps authoring order for equal lengths
	sort.SliceStable(t.rules, func(i, j int) bool {
		return len(t.rules[i].Pattern) > len(t.rules[j].Pattern)
	})

	return t, nil
}

// MustTable is like NewTable but panics on an invalid pattern.
// Authored tables are code, so a bad fragment is a programming error.
func MustTable(name string, rules []Rule) *Table {
	t, err := NewTable(name, rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name
func (t *Table) Name() string {
	return t.name
}

// Match returns the canonical name of the first rule, in evaluation order,
// whose pattern is found anywhere in text
func (t *Table) Match(text string) (string, bool) {
	for _, r := range t.rules {
		if r.re.MatchString(text) {
			return r.Canonical, true
		}
	}
	return "", false
}

// Rules returns the table's rules in evaluation order
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Rule
	}
	return out
}

// Canonicals returns the distinct canonical names in the table, sorted
func (t *Table) Canonicals() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range t.rules {
		if !seen[r.Canonical] {
			seen[r.Canonical] = true
			names = append(names, r.Canonical)
		}
	}
	sort.Strings(names)
	return names
}

// Duplicates returns rules dropped because their pattern text was already authored
func (t *Table) Duplicates() []Rule {
	return t.duplicates
}

// Len returns the number of rules in the table
func (t *Table) Len() int {
	return len(t.rules)
}
