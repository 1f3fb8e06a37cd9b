package catalog

import (
	"regexp"
	"testing"
)

func TestRazorResolver_KnownNames(t *testing.T) {
	r := NewRazorResolver(nil)

	tests := []struct {
		text string
		want string
	}{
		{"RazoRock Game Changer .84P", "Razorock Game Changer .84"},
		{"Razorock Game Changer .68", "Razorock Game Changer .68"},
		{"Karve CB (D SB)", "Karve CB"},
		{"Karve CB - C-plate OC", "Karve CB"},
		{"Gillette New Improved", "Gillette New Improved"},
		{"1950s Gillette Superspeed", "Gillette Superspeed"},
		{"Wolfman WR2", "Wolfman WR2"},
		{"Wolfman", "Wolfman WR1"},
		{"Maggard V3M", "Maggard V3M"},
		{"Blackland Blackbird", "Blackland Blackbird"},
		{"Schick Hydro-Magic", "Schick Hydromagic"},
	}

	for _, tt := range tests {
		got, ok := r.Resolve(tt.text)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%q): expected %q, got %q (ok=%v)", tt.text, tt.want, got, ok)
		}
	}
}

func TestRazorResolver_UnknownProduct(t *testing.T) {
	r := NewRazorResolver(nil)

	if got, ok := r.Resolve("Zyxwq Qvrt 9"); ok {
		t.Errorf("Expected no match for fictitious razor, got %q", got)
	}
}

func TestRazorResolver_LiteralPatternsRoundTrip(t *testing.T) {
	r := NewRazorResolver(nil)
	checked := 0

	for _, rule := range RazorTable().Rules() {
		// Only fragments with no regex syntax can be fed back as text
		if regexp.QuoteMeta(rule.Pattern) != rule.Pattern {
			continue
		}
		checked++
		got, ok := r.Resolve(rule.Pattern)
		if !ok || got != rule.Canonical {
			t.Errorf("Resolve(%q): expected %q, got %q (ok=%v)", rule.Pattern, rule.Canonical, got, ok)
		}
	}

	if checked < 50 {
		t.Errorf("Expected at least 50 literal patterns, got %d", checked)
	}
}

func TestRazorTable_NoDuplicates(t *testing.T) {
	if dupes := RazorTable().Duplicates(); len(dupes) != 0 {
		t.Errorf("Expected no duplicate razor patterns, got %v", dupes)
	}
}

func TestRazorNames_ContainsKarve(t *testing.T) {
	found := false
	for _, n := range RazorNames() {
		if n == KarveCB {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected %q in razor names", KarveCB)
	}
}
