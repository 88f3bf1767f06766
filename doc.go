/*
Package rubytext rewrites ruby-annotation markup into rich text with
spacing directives that center each gloss (furigana) over its base text.

Input uses HTML-style ruby tags:

	吾輩は<ruby>猫<rp>(</rp><rt>ねこ</rt><rp>)</rp></ruby>である

Output is the directive dialect understood by TextMeshPro-style renderers,
built from <nobr>, <space=..em>, <voffset=..em> and <size=..em> segments.
Glyph widths come from a caller-supplied [Measure]; package metrics ships
ready-made implementations.

The work splits into three small, separate machines: package markup
classifies spans lexically, [ComputeOffsets] solves the centering layout,
and the transform driver in this package pairs base and gloss spans and
emits the decorated form into a pooled charbuf.Buffer.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rubytext

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rubytext'.
func tracer() tracing.Trace {
	return tracing.Select("rubytext")
}
