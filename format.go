package rubytext

import (
	"strconv"

	"github.com/Akemisora/unity-ruby-text/charbuf"
)

// appendEm writes v in the compact form the directive dialect expects:
// rounded to hundredths, trailing zeros and a bare trailing dot removed,
// the integer zero of a leading decimal dropped, '.' separator always.
//
//	2.25 -> "2.25"   0.5 -> ".5"   -0.5 -> "-.5"   1.00 -> "1"   0 -> "0"
func appendEm(buf *charbuf.Buffer, v float64) {
	var scratch [24]byte
	s := strconv.AppendFloat(scratch[:0], v, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	switch {
	case len(s) > 1 && s[0] == '0' && s[1] == '.':
		s = s[1:]
	case len(s) > 2 && s[0] == '-' && s[1] == '0' && s[2] == '.':
		s = append(s[:1], s[2:]...)
	}
	if len(s) == 2 && s[0] == '-' && s[1] == '0' {
		s = s[1:] // values that rounded to zero lose their sign
	}
	buf.AppendBytes(s)
}
