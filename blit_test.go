package iobuf

import "testing"

func TestBlitDoesNotAdvanceEitherCursor(t *testing.T) {
	src := OfString("hello")
	dst := Create(5)

	Blit(src, 0, dst, 0, 5)

	if Length(src) != 5 {
		t.Fatalf("Blit advanced src's window, Length = %d, want 5", Length(src))
	}
	if Length(dst) != 5 {
		t.Fatalf("Blit advanced dst's window, Length = %d, want 5", Length(dst))
	}
	if got := ConsumeAllString(dst); got != "hello" {
		t.Fatalf("Blit copied %q, want %q", got, "hello")
	}
}

func TestBlitoDefaults(t *testing.T) {
	src := OfString("world")
	dst := Create(5)
	Blito(src, dst)
	if got := ConsumeAllString(dst); got != "world" {
		t.Fatalf("Blito copied %q, want %q", got, "world")
	}
}

func TestBlitConsumeAdvancesOnlySrc(t *testing.T) {
	src := OfString("abc")
	dst := Create(3)
	BlitConsume(src, dst, 0, 3)
	if !IsEmpty(src) {
		t.Fatal("BlitConsume did not advance src's lo")
	}
	if got := ConsumeAllString(dst); got != "abc" {
		t.Fatalf("BlitConsume copied %q, want %q", got, "abc")
	}
}

func TestBlitFillAdvancesOnlyDst(t *testing.T) {
	src := OfString("xyz")
	dst := Create(3)
	BlitFill(src, 0, dst, 3)
	if Length(src) != 3 {
		t.Fatal("BlitFill advanced src's window")
	}
	FlipLo(dst)
	if got := ConsumeAllString(dst); got != "xyz" {
		t.Fatalf("BlitFill copied %q, want %q", got, "xyz")
	}
}

func TestBlitConsumeAndFillAdvancesBoth(t *testing.T) {
	src := OfString("pqr")
	dst := Create(3)
	BlitConsumeAndFill(src, dst, 3)
	if !IsEmpty(src) {
		t.Fatal("BlitConsumeAndFill did not advance src")
	}
	FlipLo(dst)
	if got := ConsumeAllString(dst); got != "pqr" {
		t.Fatalf("BlitConsumeAndFill copied %q, want %q", got, "pqr")
	}
}

func TestBlitSubIsIndependentlyOwned(t *testing.T) {
	src := OfString("abcdef")
	sub := BlitSub(src, 2, 3)
	if Length(sub) != 3 {
		t.Fatalf("Length(sub) = %d, want 3", Length(sub))
	}
	FillU8(sub, 'Z') // would panic if the window were exhausted/aliased oddly
	_ = sub

	// Mutating the copy must not affect src.
	if got := ConsumeAllString(src); got != "abcdef" {
		t.Fatalf("BlitSub's copy aliased src: src now reads %q", got)
	}
}

func TestBlitConsumeSubAdvancesSrc(t *testing.T) {
	src := OfString("abcdef")
	sub := BlitConsumeSub(src, 3)
	if got := ConsumeAllString(sub); got != "abc" {
		t.Fatalf("BlitConsumeSub copied %q, want %q", got, "abc")
	}
	if got := ConsumeAllString(src); got != "def" {
		t.Fatalf("BlitConsumeSub left src as %q, want %q", got, "def")
	}
}

func TestBlitOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Blit with an out-of-range length did not panic")
		}
	}()
	src := OfString("ab")
	dst := Create(2)
	Blit(src, 0, dst, 0, 5)
}

func TestUnsafeBlitMatchesChecked(t *testing.T) {
	src := OfString("checksum")
	dstChecked := Create(8)
	Blit(src, 0, dstChecked, 0, 8)

	dstUnsafe := Create(8)
	UnsafeBlit(src, 0, dstUnsafe, 0, 8)

	if ConsumeAllString(dstChecked) != ConsumeAllString(dstUnsafe) {
		t.Fatal("UnsafeBlit disagrees with Blit")
	}
}
