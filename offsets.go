package rubytext

// OffsetTriple is the horizontal spacing, in em, inserted before the base
// text, between base and gloss, and after the gloss of one annotated
// unit. Exactly one of Lead and Trail is zero.
type OffsetTriple struct {
	Lead  float64
	Mid   float64
	Trail float64
}

// ComputeOffsets balances a base text against its gloss so that both
// share a common visual center while the unit's total advance stays
// max(baseWidth, glossWidth).
//
// Mid is the caret correction between the two runs and is negative
// whenever either text is non-empty; the narrower side's outer offset
// pads the run back to full width, the wider side's outer offset is zero.
// Equal widths land in the second branch, where both outer offsets vanish
// and Mid is exactly -baseWidth. Zero-width inputs need no special cases.
func ComputeOffsets(baseText, glossText string, glossScale float64, measure Measure) OffsetTriple {
	baseWidth := measure(baseText)
	glossWidth := measure(glossText) * glossScale
	if baseWidth > glossWidth {
		mid := -(baseWidth + glossWidth) / 2
		return OffsetTriple{Lead: 0, Mid: mid, Trail: -(glossWidth + mid)}
	}
	lead := (glossWidth - baseWidth) / 2
	return OffsetTriple{Lead: lead, Mid: -(baseWidth + lead), Trail: 0}
}
