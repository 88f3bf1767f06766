package charbuf

import (
	"strings"
	"testing"
	"time"
)

func TestAppendGrowthPreservesContent(t *testing.T) {
	b := New(4)
	var want strings.Builder
	pieces := []string{"alpha", "β", "gamma-gamma-gamma", "", "δέλτα", strings.Repeat("x", 300)}
	for _, p := range pieces {
		b.Append(p)
		want.WriteString(p)
	}
	if got := b.TakeString(); got != want.String() {
		t.Fatalf("content = %q, want %q", got, want.String())
	}
}

func TestAppendRepeat(t *testing.T) {
	b := New(0)
	b.AppendRepeat(' ', 3)
	b.AppendRepeat('ん', 2)
	b.AppendRepeat('x', 0)
	b.AppendRune('!')
	if got := b.TakeString(); got != "   んん!" {
		t.Fatalf("content = %q", got)
	}
}

func TestAppendFormatted(t *testing.T) {
	b := New(0)
	b.AppendInt(-42)
	b.Append("|")
	b.AppendFloat(2.25, 2)
	b.Append("|")
	b.AppendFloat(0.5, -1)
	b.Append("|")
	b.AppendTime(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), "2006-01-02")
	if got := b.TakeString(); got != "-42|2.25|0.5|2026-08-30" {
		t.Fatalf("content = %q", got)
	}
}

func TestSetLenTruncateAndReappend(t *testing.T) {
	b := New(16)
	b.Append("abcdef")
	b.SetLen(3)
	if b.Len() != 3 {
		t.Fatalf("len = %d, want 3", b.Len())
	}
	b.Append("XYZ")
	if got := b.TakeString(); got != "abcXYZ" {
		t.Fatalf("content = %q, want abcXYZ", got)
	}
}

func TestSetLenOutsideCapacityPanics(t *testing.T) {
	b := New(8)
	defer b.Release()
	defer func() {
		if recover() == nil {
			t.Fatalf("SetLen beyond capacity did not panic")
		}
	}()
	b.SetLen(b.Cap() + 1)
}

func TestViewDoesNotCopy(t *testing.T) {
	b := New(8)
	defer b.Release()
	b.Append("view")
	v := b.View()
	if string(v) != "view" {
		t.Fatalf("view = %q", v)
	}
	v[0] = 'V'
	if string(b.View()) != "View" {
		t.Fatalf("view is not aliased to the buffer")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	b := New(8)
	b.Append("x")
	b.Release()
	b.Release() // second release is a no-op
}

func TestUseAfterReleasePanics(t *testing.T) {
	b := New(8)
	b.Release()
	defer func() {
		if recover() == nil {
			t.Fatalf("append to a released buffer did not panic")
		}
	}()
	b.Append("boom")
}

func TestTakeStringReleases(t *testing.T) {
	b := New(8)
	b.Append("done")
	if got := b.TakeString(); got != "done" {
		t.Fatalf("content = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("use after TakeString did not panic")
		}
	}()
	b.Append("boom")
}

func TestPoolRoundTrip(t *testing.T) {
	// smoke test: rent-return cycles must stay functional
	for i := 0; i < 8; i++ {
		b := New(32)
		b.Append(strings.Repeat("pool", i))
		if got := b.TakeString(); got != strings.Repeat("pool", i) {
			t.Fatalf("cycle %d content = %q", i, got)
		}
	}
}
