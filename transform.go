package rubytext

import (
	"github.com/Akemisora/unity-ruby-text/charbuf"
	"github.com/Akemisora/unity-ruby-text/markup"
)

// AppendTransformed scans input and appends its spacing-decorated form to
// buf. Base and gloss spans arrive from the scanner as separate events;
// the driver accumulates at most one of each and flushes the pending pair
// whenever a plain span or a new base span arrives, and once more at end
// of input.
func AppendTransformed(buf *charbuf.Buffer, input string, opts Options, measure Measure) {
	d := driver{buf: buf, opts: opts, measure: measure}
	sc := markup.New(input)
	for span, ok := sc.Next(); ok; span, ok = sc.Next() {
		switch span.Kind {
		case markup.Plain:
			d.flush()
			buf.Append(span.Text)
		case markup.Base:
			d.flush()
			d.base = span.Text
		case markup.Gloss:
			d.gloss = span.Text
		case markup.Decoration:
			// recognized fallback parentheses, always dropped
		}
	}
	d.flush()
}

// AppendStripped appends input to buf with all recognized markers
// removed. Every yielded span's text is kept, whatever its kind; only the
// markers themselves vanish.
func AppendStripped(buf *charbuf.Buffer, input string) {
	sc := markup.New(input)
	for span, ok := sc.Next(); ok; span, ok = sc.Next() {
		buf.Append(span.Text)
	}
}

// driver pairs base and gloss spans across scanner steps and emits one
// formatted unit per flush.
type driver struct {
	buf     *charbuf.Buffer
	opts    Options
	measure Measure
	base    string
	gloss   string
}

// flush emits the pending pair and clears it.
//
// A unit with no gloss degenerates to its base text. A unit with no base
// gets only the voffset/size wrapping, since there is nothing to center
// against. A full unit is wrapped in <nobr> with the spacing triple from
// ComputeOffsets, zero-valued space directives omitted.
func (d *driver) flush() {
	base, gloss := d.base, d.gloss
	d.base, d.gloss = "", ""
	if !d.opts.Enabled {
		gloss = "" // glosses hidden, units degrade to their base text
	}
	switch {
	case base == "" && gloss == "":
		return
	case gloss == "":
		d.buf.Append(base)
	case base == "":
		d.openGloss()
		d.buf.Append(gloss)
		d.closeGloss()
	default:
		off := ComputeOffsets(base, gloss, d.opts.GlossScale, d.measure)
		tracer().Debugf("unit %q over %q: lead=%g mid=%g trail=%g", gloss, base, off.Lead, off.Mid, off.Trail)
		d.buf.Append("<nobr>")
		d.space(off.Lead)
		d.buf.Append(base)
		d.space(off.Mid)
		d.openGloss()
		d.buf.Append(gloss)
		d.closeGloss()
		d.space(off.Trail)
		d.buf.Append("</nobr>")
	}
}

func (d *driver) openGloss() {
	d.buf.Append("<voffset=")
	appendEm(d.buf, d.opts.VerticalOffset)
	d.buf.Append("em><size=")
	appendEm(d.buf, d.opts.GlossScale)
	d.buf.Append("em>")
}

func (d *driver) closeGloss() {
	d.buf.Append("</size></voffset>")
}

// space appends a <space=..em> directive, omitting exact zeroes.
func (d *driver) space(v float64) {
	if v == 0 {
		return
	}
	d.buf.Append("<space=")
	appendEm(d.buf, v)
	d.buf.Append("em>")
}
