/*
Package markup scans ruby-annotation markup.

A [Scanner] walks an input string once, left to right, and classifies it
into spans of plain text, annotation base text, gloss text and decoration
text. Recognized markers (<ruby>, <rt>, <rp> and their closing forms) are
consumed as state transitions and never surface as spans; tags the scanner
does not recognize pass through as plain text, delimiters included.

The scanner is deliberately lexical: it classifies, it does not pair.
Pairing a base span with its gloss span is the job of the transform driver
in the root package.
*/
package markup

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rubytext.markup'.
func tracer() tracing.Trace {
	return tracing.Select("rubytext.markup")
}
