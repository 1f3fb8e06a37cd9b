package extract

import (
	"regexp"
	"testing"
)

func TestRazorExtractor_PostingFormats(t *testing.T) {
	e := NewRazorExtractor()

	tests := []struct {
		name    string
		comment string
		want    string
	}{
		{
			name:    "label line",
			comment: "Razor: RazoRock Game Changer .84P",
			want:    "RazoRock Game Changer .84P",
		},
		{
			name:    "label line inside a post",
			comment: "**Lather:** Stirling Executive Man\n* **Razor:** Karve CB (D SB)\n* **Blade:** Nacet",
			want:    "Karve CB (D SB)",
		},
		{
			name:    "plus separated list",
			comment: "Razor - Gillette Tech + Astra SP",
			want:    "Gillette Tech",
		},
		{
			name:    "bold value",
			comment: "*Razor*: the trusty **Blackland Blackbird**",
			want:    "Blackland Blackbird",
		},
		{
			name:    "bold safety razor label",
			comment: "**Safety Razor** - RazoRock - Gamechanger 0.84P\n**Blade** - Feather",
			want:    "RazoRock - Gamechanger 0.84P",
		},
		{
			name:    "decorations stripped",
			comment: "✨ Razor: Kárve CB – C-plate OC ✨",
			want:    "Karve CB  C-plate OC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Extract(tt.comment)
			if !ok || got != tt.want {
				t.Errorf("Expected %q, got %q (ok=%v)", tt.want, got, ok)
			}
		})
	}
}

func TestRazorExtractor_BladeNotesHeadingDiscarded(t *testing.T) {
	e := NewRazorExtractor()

	got, ok := e.Extract("❧ Razor and Blade Notes: Karve CB")
	if ok {
		t.Errorf("Expected heading to be discarded, got %q", got)
	}
}

func TestRazorExtractor_LaterTemplateOverridesEarlier(t *testing.T) {
	e := NewRazorExtractor()

	comment := "Razor: my usual\n*Razor*: today it is **Karve CB**"
	got, _ := e.Extract(comment)
	if got != "Karve CB" {
		t.Errorf("Expected the later template to win, got %q", got)
	}
}

func TestRazorExtractor_FilteredCandidateFallsBackToEarlierSurvivor(t *testing.T) {
	e := NewRazorExtractor()

	comment := "Razor: Karve CB\n*Razor*: **and blade notes**"
	got, ok := e.Extract(comment)
	if !ok || got != "Karve CB" {
		t.Errorf("Expected the surviving earlier candidate, got %q (ok=%v)", got, ok)
	}
}

func TestRazorExtractor_RazorockPrefixCollision(t *testing.T) {
	e := NewFieldExtractor("razor", []Template{
		{Name: "after-label", Re: regexp.MustCompile(`(?i)Razor\s*([\w ]+)`)},
	}, []Filter{PrefixFilter("razorock", "ock")})

	if got, ok := e.Extract("Razorock Lupo"); ok {
		t.Errorf("Expected 'ock' candidate to be discarded, got %q", got)
	}
}

func TestRazorExtractor_NoRazorLine(t *testing.T) {
	e := NewRazorExtractor()

	if got, ok := e.Extract("Lovely shave today, thanks for asking."); ok {
		t.Errorf("Expected no razor, got %q", got)
	}
}

func TestRazorExtractor_CRLF(t *testing.T) {
	e := NewRazorExtractor()

	got, ok := e.Extract("Razor: Karve CB\r\nBlade: Astra")
	if !ok || got != "Karve CB" {
		t.Errorf("Expected Karve CB, got %q (ok=%v)", got, ok)
	}
}

func TestBrushExtractor(t *testing.T) {
	e := NewBrushExtractor()

	got, ok := e.Extract("* Razor: Karve CB\n* Brush: TOBS Pure Badger\n* Lather: MdC")
	if !ok || got != "TOBS Pure Badger" {
		t.Errorf("Expected TOBS Pure Badger, got %q (ok=%v)", got, ok)
	}
	if e.Field() != "brush" {
		t.Errorf("Expected field brush, got %s", e.Field())
	}
}

func TestToASCII(t *testing.T) {
	tests := map[string]string{
		"Mühle R89":       "Muhle R89",
		"❧ Razor":         " Razor",
		"plain":           "plain",
		"Ça va 🪒 bien": "Ca va  bien",
	}

	for in, want := range tests {
		if got := ToASCII(in); got != want {
			t.Errorf("ToASCII(%q): expected %q, got %q", in, want, got)
		}
	}
}
