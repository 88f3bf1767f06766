/*
Package metrics provides ready-made width measures for ruby text layout.

Hosts with a real font pipeline should derive a rubytext.Measure from
their own metrics. The constructors here cover everything below that:
[Fixed] for uniform advances, [EastAsian] for Unicode width classes,
[Terminal] for monospaced cell widths, and [Face] for actual glyph
advances of a golang.org/x/image font face.
*/
package metrics

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rubytext.metrics'.
func tracer() tracing.Trace {
	return tracing.Select("rubytext.metrics")
}
