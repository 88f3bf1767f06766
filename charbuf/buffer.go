package charbuf

import (
	"errors"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"
)

// ErrTooLarge is the panic value when growing a buffer would exceed the
// maximum slice length.
var ErrTooLarge = errors.New("charbuf: buffer too large")

const minBlock = 64

const maxInt = int(^uint(0) >> 1)

// blockPool shares backing blocks between buffers.
var blockPool sync.Pool

// rent returns an empty block with at least the requested capacity,
// reusing a pooled block when one is big enough.
func rent(capacity int) []byte {
	if capacity < minBlock {
		capacity = minBlock
	}
	if p, ok := blockPool.Get().(*[]byte); ok && cap(*p) >= capacity {
		return (*p)[:0]
	}
	return make([]byte, 0, capacity)
}

// giveBack returns a block to the pool.
func giveBack(block []byte) {
	block = block[:0]
	blockPool.Put(&block)
}

// Buffer is an append-only character sequence backed by a pooled block.
// The zero value is not usable; construct with [New]. After Release or
// TakeString the buffer must not be used again.
type Buffer struct {
	block []byte // logical length is len(block); nil after release
}

// New returns a Buffer with at least capacityHint bytes of storage.
func New(capacityHint int) *Buffer {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Buffer{block: rent(capacityHint)}
}

// Len returns the logical content length in bytes.
func (b *Buffer) Len() int {
	return len(b.block)
}

// Cap returns the physical capacity of the current block.
func (b *Buffer) Cap() int {
	return cap(b.block)
}

// SetLen shrinks or extends the logical length within the current
// capacity. It never reallocates; extending exposes whatever bytes the
// block already holds.
func (b *Buffer) SetLen(n int) {
	b.assertLive()
	assert(n >= 0 && n <= cap(b.block), "charbuf: length outside capacity")
	b.block = b.block[:n]
}

// grow makes room for extra more bytes, moving content into a larger
// rented block if needed. The old block goes back to the pool only after
// the copy, so content is never lost to a failed allocation.
func (b *Buffer) grow(extra int) {
	pos := len(b.block)
	if extra <= cap(b.block)-pos {
		return
	}
	if extra > maxInt-pos {
		panic(ErrTooLarge)
	}
	need := pos + extra
	newCap := 2 * cap(b.block)
	if newCap < need || newCap < 0 {
		newCap = need
	}
	next := rent(newCap)[:pos]
	copy(next, b.block)
	old := b.block
	b.block = next
	giveBack(old)
}

// Append adds text at the logical end.
func (b *Buffer) Append(s string) {
	b.assertLive()
	b.grow(len(s))
	b.block = append(b.block, s...)
}

// AppendBytes adds raw bytes at the logical end.
func (b *Buffer) AppendBytes(p []byte) {
	b.assertLive()
	b.grow(len(p))
	b.block = append(b.block, p...)
}

// AppendRune adds one rune, UTF-8 encoded.
func (b *Buffer) AppendRune(r rune) {
	b.AppendRepeat(r, 1)
}

// AppendRepeat adds count copies of r.
func (b *Buffer) AppendRepeat(r rune, count int) {
	b.assertLive()
	if count <= 0 {
		return
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	if n > (maxInt-len(b.block))/count {
		panic(ErrTooLarge)
	}
	b.grow(n * count)
	for i := 0; i < count; i++ {
		b.block = append(b.block, enc[:n]...)
	}
}

// AppendInt adds the decimal form of v.
func (b *Buffer) AppendInt(v int64) {
	var scratch [20]byte
	b.AppendBytes(strconv.AppendInt(scratch[:0], v, 10))
}

// AppendFloat adds v in fixed-point notation with prec fractional digits
// (or the shortest round-tripping form for prec < 0).
func (b *Buffer) AppendFloat(v float64, prec int) {
	var scratch [32]byte
	b.AppendBytes(strconv.AppendFloat(scratch[:0], v, 'f', prec, 64))
}

// AppendTime adds t formatted according to layout.
func (b *Buffer) AppendTime(t time.Time, layout string) {
	var scratch [64]byte
	b.AppendBytes(t.AppendFormat(scratch[:0], layout))
}

// View returns the logical content without copying. The view is
// invalidated by any later append, SetLen, Release or TakeString.
func (b *Buffer) View() []byte {
	b.assertLive()
	return b.block
}

// TakeString materializes an owned copy of the content and releases the
// buffer's storage back to the pool. The buffer is dead afterwards.
func (b *Buffer) TakeString() string {
	b.assertLive()
	s := string(b.block)
	b.Release()
	return s
}

// Release returns the backing block to the pool. Releasing an already
// released buffer is a no-op; any other use after release is a defect.
func (b *Buffer) Release() {
	if b == nil || b.block == nil {
		return
	}
	giveBack(b.block)
	b.block = nil
}

func (b *Buffer) assertLive() {
	assert(b != nil && b.block != nil, "charbuf: use of released buffer")
}

// assert panics when condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
