package metrics

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"

	rubytext "github.com/Akemisora/unity-ruby-text"
)

// Fixed returns a measure that charges em per rune, regardless of glyph.
func Fixed(em float64) rubytext.Measure {
	return func(text string) float64 {
		return float64(utf8.RuneCountInString(text)) * em
	}
}

// EastAsian returns a measure based on Unicode East-Asian-Width classes:
// wide and fullwidth runes advance one em, everything else half an em.
// A serviceable approximation for mixed CJK/Latin text when no font
// metrics are at hand.
func EastAsian() rubytext.Measure {
	return func(text string) float64 {
		w := 0.0
		for _, r := range text {
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				w += 1
			default:
				w += 0.5
			}
		}
		return w
	}
}

// Terminal returns a measure backed by go-runewidth's terminal cell
// widths, one cell counting as half an em. This is what the CLI uses to
// preview markup in a monospaced terminal.
func Terminal() rubytext.Measure {
	return func(text string) float64 {
		return float64(runewidth.StringWidth(text)) * 0.5
	}
}

// Face returns a measure that sums the glyph advances of face and
// normalizes them by em, the face's em size in 26.6 fixed point. Runes
// without a glyph contribute nothing.
func Face(face font.Face, em fixed.Int26_6) rubytext.Measure {
	return func(text string) float64 {
		if em == 0 {
			return 0
		}
		var advance fixed.Int26_6
		for _, r := range text {
			a, ok := face.GlyphAdvance(r)
			if !ok {
				tracer().Debugf("face has no glyph for %q", r)
				continue
			}
			advance += a
		}
		return float64(advance) / float64(em)
	}
}
