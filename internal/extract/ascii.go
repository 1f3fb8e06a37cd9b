package extract

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ToASCII folds text to plain ASCII: accents are stripped and any other
// non-ASCII decoration (emoji, fleurons, smart quotes) is dropped
func ToASCII(text string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
