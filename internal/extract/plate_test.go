package extract

import (
	"strings"
	"testing"
)

// stubResolver resolves anything containing a key to its value
type stubResolver map[string]string

func (s stubResolver) Resolve(text string) (string, bool) {
	for k, v := range s {
		if strings.Contains(strings.ToLower(text), k) {
			return v, true
		}
	}
	return "", false
}

func newTestPlateExtractor() *PlateExtractor {
	razors := stubResolver{"karve": "Karve CB", "blackbird": "Blackland Blackbird"}
	return NewPlateExtractor(NewRazorExtractor(), razors, "Karve CB")
}

func TestPlateExtractor_Scenarios(t *testing.T) {
	p := newTestPlateExtractor()

	tests := []struct {
		comment string
		want    string
	}{
		{"Razor: Karve CB (D SB)", "D SB"},
		{"Razor: Karve CB - C-plate OC", "C OC"},
		{"Razor: Karve CB (E OC)", "E OC"},
		{"Razor: Karve CB - plate A", "A SB"},
		{"* **Razor:** Karve CB B-plate\n* **Blade:** Astra", "B SB"},
	}

	for _, tt := range tests {
		got, ok := p.Extract(tt.comment)
		if !ok || got != tt.want {
			t.Errorf("Extract(%q): expected %q, got %q (ok=%v)", tt.comment, tt.want, got, ok)
		}
	}
}

func TestPlateExtractor_GateRejectsOtherRazors(t *testing.T) {
	p := newTestPlateExtractor()

	for _, comment := range []string{
		"Razor: Blackland Blackbird (D SB)",
		"Razor: Zyxwq Qvrt (C OC)",
	} {
		if got, ok := p.Extract(comment); ok {
			t.Errorf("Extract(%q): expected absent, got %q", comment, got)
		}
	}
}

func TestPlateExtractor_LetterNeedsBoundary(t *testing.T) {
	p := newTestPlateExtractor()

	for _, name := range []string{
		"Karve CB",
		"Karve CB Brass",
		"Karve (Deluxe)",
		"Karve CBD",
	} {
		if got, ok := p.FromName(name); ok {
			t.Errorf("FromName(%q): expected absent, got %q", name, got)
		}
	}
}

func TestPlateExtractor_OCNeedsBoundary(t *testing.T) {
	p := newTestPlateExtractor()

	got, ok := p.FromName("Karve CB (D) OCtagon")
	if !ok || got != "D SB" {
		t.Errorf("Expected D SB, got %q (ok=%v)", got, ok)
	}
}

func TestPlateExtractor_NoRazorLine(t *testing.T) {
	p := newTestPlateExtractor()

	if got, ok := p.Extract("Brush: Karve (D SB)"); ok {
		t.Errorf("Expected absent without a razor line, got %q", got)
	}
}
