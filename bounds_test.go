package iobuf

import "testing"

// Scenario 1: create, fill, flip, consume.
func TestScenarioCreateFillFlipConsume(t *testing.T) {
	b := Create(16)
	FillU32BE(b, 0x01020304)
	FillU32BE(b, 0x05060708)
	FlipLo(b)
	if Length(b) != 8 {
		t.Fatalf("Length = %d, want 8", Length(b))
	}
	if got := ConsumeU32BE(b); got != 0x01020304 {
		t.Fatalf("first ConsumeU32BE = %#x, want 0x01020304", got)
	}
	if got := ConsumeU32BE(b); got != 0x05060708 {
		t.Fatalf("second ConsumeU32BE = %#x, want 0x05060708", got)
	}
	if !IsEmpty(b) {
		t.Fatal("window not empty after consuming everything filled")
	}
}

// Scenario 2: speculative parse and rewind.
func TestScenarioSpeculativeParseAndRewind(t *testing.T) {
	b := Create(7)
	FillU32BE(b, 3)
	FillBytes(b, []byte("fo"))
	FlipLo(b)

	snap := LoBoundOf(b)
	n := ConsumeU32BE(b)
	if n != 3 {
		t.Fatalf("ConsumeU32BE = %d, want 3", n)
	}
	if Length(b) < int(n) {
		snap.Restore(b)
	}
	if Length(b) != 6 {
		t.Fatalf("after speculative rewind, Length = %d, want 6 (back to pre-read window)", Length(b))
	}
}

// Scenario 3: compact preserves unread data.
func TestScenarioCompactPreservesUnreadData(t *testing.T) {
	b := OfString("ABCDEFGH")
	Advance(b, 3)
	Compact(b)
	e := ExpertOf(b)
	if got := string(e.Buf()[0:5]); got != "DEFGH" {
		t.Fatalf("buf[0:5] = %q, want %q", got, "DEFGH")
	}
	if e.Lo() != 5 || e.Hi() != 8 {
		t.Fatalf("(lo, hi) = (%d, %d), want (5, 8)", e.Lo(), e.Hi())
	}
}

// Scenario 5: bounded flip preserves header.
func TestScenarioBoundedFlipPreservesHeader(t *testing.T) {
	b := Create(14)
	FillBytes(b, []byte{1, 2, 3, 4})
	FillBytes(b, make([]byte, 10))
	FlipLo(b)

	snap := LoBoundOf(b)
	Advance(b, 4)
	Resize(b, 10)
	_ = ConsumeAllBytes(b)
	BoundedFlipLo(b, snap)

	if Length(b) != 14 {
		t.Fatalf("Length after BoundedFlipLo = %d, want 14 (header + payload)", Length(b))
	}
}

func TestFlipLoFlipHiDual(t *testing.T) {
	b := Create(10)
	FillBytes(b, []byte("abcde"))
	lo0, hi0 := ExpertOf(b).Lo(), ExpertOf(b).Hi()
	FlipLo(b)
	FlipHi(b)
	e := ExpertOf(b)
	if e.Lo() != lo0 || e.Hi() != hi0 {
		t.Fatalf("FlipLo;FlipHi dual law violated: got (%d,%d), want (%d,%d)", e.Lo(), e.Hi(), lo0, hi0)
	}
}

func TestResetIdempotent(t *testing.T) {
	b := Create(8)
	Advance(b, 2)
	Reset(b)
	e1 := ExpertOf(b)
	lo1, hi1 := e1.Lo(), e1.Hi()
	Reset(b)
	e2 := ExpertOf(b)
	if e2.Lo() != lo1 || e2.Hi() != hi1 {
		t.Fatal("Reset;Reset is not idempotent")
	}
}

func TestNarrowIdempotent(t *testing.T) {
	b := Create(8)
	Advance(b, 2)
	Narrow(b)
	e1 := ExpertOf(b)
	loMin1, hiMax1 := e1.LoMin(), e1.HiMax()
	Narrow(b)
	e2 := ExpertOf(b)
	if e2.LoMin() != loMin1 || e2.HiMax() != hiMax1 {
		t.Fatal("Narrow;Narrow is not idempotent")
	}
}

func TestAdvanceOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Advance past hi did not panic")
		}
	}()
	b := Create(4)
	Advance(b, 5)
}

func TestResizeOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Resize past hi_max did not panic")
		}
	}()
	b := Create(4)
	Resize(b, 5)
}

func TestLoBoundRestoreOutsideLimitsPanics(t *testing.T) {
	b := Create(8)
	snap := LoBoundOf(b)
	Advance(b, 4)
	Narrow(b)
	defer func() {
		if recover() == nil {
			t.Fatal("Restore of a snapshot below the narrowed lo_min did not panic")
		}
	}()
	snap.Restore(b)
}

func TestBoundedCompactPreservesBytes(t *testing.T) {
	b := Create(16)
	FillBytes(b, []byte("HEADER"))
	FillBytes(b, []byte("PAYLOAD"))
	FlipLo(b)

	loSnap := LoBoundOf(b)
	Advance(b, 6)
	hiSnap := HiBoundOf(b)
	BoundedCompact(b, loSnap, hiSnap)

	e := ExpertOf(b)
	if got := string(e.Buf()[loSnap.v : loSnap.v+7]); got != "PAYLOAD" {
		t.Fatalf("BoundedCompact did not preserve payload bytes, got %q", got)
	}
}

func TestProtectWindowAndBoundsRestoresOnPanic(t *testing.T) {
	b := Create(8)
	before := ExpertOf(b)
	loMin0, lo0, hi0, hiMax0 := before.LoMin(), before.Lo(), before.Hi(), before.HiMax()

	func() {
		defer func() { recover() }()
		ProtectWindowAndBounds(b, func(inner Buf[ReadWrite, Seek]) {
			Advance(inner, 3)
			Narrow(inner)
			panic("boom")
		})
	}()

	after := ExpertOf(b)
	if after.LoMin() != loMin0 || after.Lo() != lo0 || after.Hi() != hi0 || after.HiMax() != hiMax0 {
		t.Fatal("ProtectWindowAndBounds did not restore bounds after a panicking callback")
	}
}

func TestProtectWindowAndBoundsRestoresOnSuccess(t *testing.T) {
	b := Create(8)
	before := ExpertOf(b)
	lo0, hi0 := before.Lo(), before.Hi()

	ProtectWindowAndBounds(b, func(inner Buf[ReadWrite, Seek]) {
		Advance(inner, 3)
	})

	after := ExpertOf(b)
	if after.Lo() != lo0 || after.Hi() != hi0 {
		t.Fatal("ProtectWindowAndBounds did not restore bounds after a successful callback")
	}
}
