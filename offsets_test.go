package rubytext

import (
	"math"
	"testing"
	"unicode/utf8"
)

// doubleWidth charges two em per rune.
func doubleWidth(text string) float64 {
	return float64(2 * utf8.RuneCountInString(text))
}

func TestComputeOffsetsWideBase(t *testing.T) {
	off := ComputeOffsets("XY", "Z", 0.5, doubleWidth) // widths 4 vs 1
	want := OffsetTriple{Lead: 0, Mid: -2.5, Trail: 1.5}
	if off != want {
		t.Fatalf("offsets = %+v, want %+v", off, want)
	}
}

func TestComputeOffsetsWideGloss(t *testing.T) {
	off := ComputeOffsets("X", "ガナナ", 0.5, doubleWidth) // widths 2 vs 3
	want := OffsetTriple{Lead: 0.5, Mid: -2.5, Trail: 0}
	if off != want {
		t.Fatalf("offsets = %+v, want %+v", off, want)
	}
}

func TestComputeOffsetsEqualWidths(t *testing.T) {
	off := ComputeOffsets("X", "ガナ", 0.5, doubleWidth) // widths 2 vs 2
	want := OffsetTriple{Lead: 0, Mid: -2, Trail: 0}
	if off != want {
		t.Fatalf("offsets = %+v, want %+v", off, want)
	}
}

func TestComputeOffsetsZeroWidths(t *testing.T) {
	off := ComputeOffsets("", "", 0.5, doubleWidth)
	if off != (OffsetTriple{}) {
		t.Fatalf("offsets for empty texts = %+v, want all zero", off)
	}
}

// One of Lead/Trail is always zero, Mid never positive, and the total
// advance of the decorated run equals the wider of the two widths.
func TestComputeOffsetsCenteringLaw(t *testing.T) {
	cases := []struct {
		base, gloss string
		scale       float64
	}{
		{"XY", "Z", 0.5},
		{"X", "ガナナ", 0.5},
		{"X", "ガナ", 0.5},
		{"漢字", "かんじ", 0.5},
		{"a", "reading", 0.25},
		{"longbasetext", "r", 1},
		{"", "gloss", 0.5},
		{"base", "", 0.5},
	}
	for _, c := range cases {
		off := ComputeOffsets(c.base, c.gloss, c.scale, doubleWidth)
		if off.Lead != 0 && off.Trail != 0 {
			t.Errorf("%q/%q: lead=%g and trail=%g, one must be zero", c.base, c.gloss, off.Lead, off.Trail)
		}
		if off.Mid > 0 {
			t.Errorf("%q/%q: mid=%g, want <= 0", c.base, c.gloss, off.Mid)
		}
		bw := doubleWidth(c.base)
		gw := doubleWidth(c.gloss) * c.scale
		advance := off.Lead + bw + off.Mid + gw + off.Trail
		if math.Abs(advance-math.Max(bw, gw)) > 1e-9 {
			t.Errorf("%q/%q: total advance %g, want %g", c.base, c.gloss, advance, math.Max(bw, gw))
		}
	}
}
