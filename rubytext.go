package rubytext

import (
	"github.com/Akemisora/unity-ruby-text/charbuf"
)

// Measure reports the advance width of text in em units. Implementations
// typically close over a font handle and style. It must be deterministic
// for identical inputs within one transform call.
type Measure func(text string) float64

// Options carries the host-supplied annotation parameters.
type Options struct {
	GlossScale     float64 // gloss size as a fraction of the base font size
	VerticalOffset float64 // upward gloss shift, in em
	Enabled        bool    // false renders base text only, dropping glosses
}

// DefaultOptions returns the conventional half-size, one-em-raised setup.
func DefaultOptions() Options {
	return Options{GlossScale: 0.5, VerticalOffset: 1, Enabled: true}
}

// Transform rewrites input's annotation markup into spacing-decorated
// rich text and returns the result. Plain text and unrecognized tags pass
// through verbatim, so marker-free input round-trips unchanged.
func Transform(input string, opts Options, measure Measure) string {
	buf := charbuf.New(len(input) + len(input)/2)
	AppendTransformed(buf, input, opts, measure)
	return buf.TakeString()
}

// Strip removes all recognized annotation markers from input, keeping
// every piece of literal text: base, gloss and decoration content survive
// unlabeled. Stripping is idempotent.
func Strip(input string) string {
	buf := charbuf.New(len(input))
	AppendStripped(buf, input)
	return buf.TakeString()
}
