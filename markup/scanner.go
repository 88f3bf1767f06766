package markup

import (
	"iter"
	"strings"
)

// Kind classifies a scanned span of input text.
type Kind uint8

const (
	Plain      Kind = iota // ordinary text, passed through verbatim
	Base                   // primary text of an annotated unit
	Gloss                  // annotation text attached to a base
	Decoration             // fallback parenthesis content, always discarded
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Base:
		return "base"
	case Gloss:
		return "gloss"
	case Decoration:
		return "decoration"
	}
	return "invalid"
}

// Span is a read-only window into the scanned input. Text shares the
// input's backing storage and stays valid as long as the input does.
type Span struct {
	Start int // byte offset of Text within the scanned input
	Text  string
	Kind  Kind
}

// markerOp is a scanner state transition triggered by a recognized tag.
type markerOp uint8

const (
	opRegionOpen markerOp = iota
	opRegionClose
	opGlossOpen
	opGlossClose
	opDecoOpen
	opDecoClose
)

// markers maps recognized tag literals to scanner transitions. Lookup is
// exact and case-sensitive; any other tag passes through untouched.
var markers = map[string]markerOp{
	"<ruby>":  opRegionOpen,
	"</ruby>": opRegionClose,
	"<rt>":    opGlossOpen,
	"</rt>":   opGlossClose,
	"<rp>":    opDecoOpen,
	"</rp>":   opDecoClose,
}

// Scanner is a forward-only, single-pass classifier over one input string.
// A fresh Scanner may be built over the same input any number of times; a
// single instance cannot be rewound.
type Scanner struct {
	input    string
	pos      int
	kind     Kind // kind assigned to the next text run
	inRegion bool // between <ruby> and </ruby>
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input, kind: Plain}
}

// Next returns the next span, or ok=false when input is exhausted.
//
// A tag that opens with '<' but never closes with '>' makes the scanner
// yield all remaining input as one final plain span: malformed markup is
// tolerated, trailing content is never dropped.
func (sc *Scanner) Next() (span Span, ok bool) {
	for sc.pos < len(sc.input) {
		if sc.input[sc.pos] == '<' {
			gt := strings.IndexByte(sc.input[sc.pos:], '>')
			if gt < 0 {
				tracer().Debugf("unterminated tag at offset %d, passing remainder through", sc.pos)
				span = Span{Start: sc.pos, Text: sc.input[sc.pos:], Kind: Plain}
				sc.pos = len(sc.input)
				return span, true
			}
			end := sc.pos + gt + 1
			tag := sc.input[sc.pos:end]
			op, known := markers[tag]
			if !known {
				span = Span{Start: sc.pos, Text: tag, Kind: Plain}
				sc.pos = end
				return span, true
			}
			sc.apply(op)
			sc.pos = end
			continue
		}
		start := sc.pos
		end := len(sc.input)
		if lt := strings.IndexByte(sc.input[start:], '<'); lt >= 0 {
			end = start + lt
		}
		span = Span{Start: start, Text: sc.input[start:end], Kind: sc.kind}
		sc.pos = end
		return span, true
	}
	return Span{}, false
}

// apply performs the state transition for a recognized marker. Closing a
// gloss or decoration tag reverts to base context while inside a region,
// to plain text otherwise.
func (sc *Scanner) apply(op markerOp) {
	switch op {
	case opRegionOpen:
		sc.inRegion = true
		sc.kind = Base
	case opRegionClose:
		sc.inRegion = false
		sc.kind = Plain
	case opGlossOpen:
		sc.kind = Gloss
	case opDecoOpen:
		sc.kind = Decoration
	case opGlossClose, opDecoClose:
		if sc.inRegion {
			sc.kind = Base
		} else {
			sc.kind = Plain
		}
	}
}

// Spans returns a single-use iterator over all spans of input.
func Spans(input string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		sc := New(input)
		for span, ok := sc.Next(); ok; span, ok = sc.Next() {
			if !yield(span) {
				return
			}
		}
	}
}
