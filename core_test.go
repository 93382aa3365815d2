package iobuf

import "testing"

func TestCreate(t *testing.T) {
	b := Create(16)
	if Capacity(b) != 16 || Length(b) != 16 {
		t.Fatalf("Capacity/Length = %d/%d, want 16/16", Capacity(b), Length(b))
	}
	if IsEmpty(b) {
		t.Fatalf("fresh Create(16) reported empty")
	}
}

func TestCreateNegativeLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Create(-1) did not panic")
		}
	}()
	Create(-1)
}

func TestOfString(t *testing.T) {
	b := OfString("hello")
	if Length(b) != 5 {
		t.Fatalf("Length = %d, want 5", Length(b))
	}
	if got := ConsumeAllString(b); got != "hello" {
		t.Fatalf("ConsumeAllString = %q, want %q", got, "hello")
	}
}

func TestOfBigstring(t *testing.T) {
	raw := []byte("0123456789")
	b := OfBigstring[ReadWrite](raw, 2, 4)
	if Length(b) != 4 {
		t.Fatalf("Length = %d, want 4", Length(b))
	}
	if got := ConsumeAllString(b); got != "2345" {
		t.Fatalf("ConsumeAllString = %q, want %q", got, "2345")
	}
}

func TestOfBigstringOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("OfBigstring did not panic for out-of-range request")
		}
	}()
	raw := make([]byte, 4)
	OfBigstring[ReadWrite](raw, 2, 4)
}

// Scenario 4: sub_shared aliasing.
func TestSubSharedAliasing(t *testing.T) {
	b := Create(10)
	PokeU8(b, 3, 0xAA)
	sub := SubShared[ReadWrite, Seek, Seek](b, 2, 4)
	if got := PeekU8(sub, 1); got != 0xAA {
		t.Fatalf("PeekU8(sub, 1) = %#x, want 0xAA", got)
	}
}

func TestSetBoundsAndBuffer(t *testing.T) {
	src := OfString("abcdef")
	dst := Create(1)
	SetBoundsAndBuffer(src, dst)
	if got := ConsumeAllString(dst); got != "abcdef" {
		t.Fatalf("ConsumeAllString(dst) = %q, want %q", got, "abcdef")
	}
}

func TestSetBoundsAndBufferSub(t *testing.T) {
	src := OfString("abcdefgh")
	dst := Create(1)
	SetBoundsAndBufferSub(src, dst, 2, 3)
	if got := ConsumeAllString(dst); got != "cde" {
		t.Fatalf("ConsumeAllString(dst) = %q, want %q", got, "cde")
	}
}

func TestExpert(t *testing.T) {
	b := Create(8)
	e := ExpertOf(b)
	if len(e.Buf()) != 8 {
		t.Fatalf("Buf() length = %d, want 8", len(e.Buf()))
	}
	if e.LoMin() != 0 || e.Lo() != 0 || e.Hi() != 8 || e.HiMax() != 8 {
		t.Fatalf("Expert geometry = (%d,%d,%d,%d), want (0,0,8,8)", e.LoMin(), e.Lo(), e.Hi(), e.HiMax())
	}
	e.Buf()[0] = 'z'
	if got := PeekU8(b, 0); got != 'z' {
		t.Fatalf("write through Expert.Buf() not observed, got %#x", got)
	}
}

func TestAsReadOnlyAndImmutable(t *testing.T) {
	b := Create(4)
	FillU8(b, 1)
	FillU8(b, 2)
	FlipLo(b)
	ro := AsReadOnly(b)
	if ConsumeU8(ro) != 1 {
		t.Fatal("AsReadOnly alias lost prior writes")
	}
	im := AsImmutable(b)
	if ConsumeU8(im) != 2 {
		t.Fatal("AsImmutable alias lost prior writes")
	}
}

func TestAsNoSeek(t *testing.T) {
	b := Create(4)
	ns := AsNoSeek(b)
	PokeU8(ns, 0, 7)
	if PeekU8(ns, 0) != 7 {
		t.Fatal("Peek/Poke did not operate on NoSeek handle")
	}
}
