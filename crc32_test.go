package iobuf

import (
	"hash/crc32"
	"testing"
)

func TestCrc32MatchesStdlib(t *testing.T) {
	b := OfString("the quick brown fox")
	got := Crc32(b)
	want := crc32.ChecksumIEEE([]byte("the quick brown fox"))
	if got != want {
		t.Fatalf("Crc32 = %#x, want %#x", got, want)
	}
}

func TestCrc32OnlyCoversWindow(t *testing.T) {
	b := OfString("XXXpayloadXXX")
	Advance(b, 3)
	Resize(b, 7)
	got := Crc32(b)
	want := crc32.ChecksumIEEE([]byte("payload"))
	if got != want {
		t.Fatalf("Crc32 over narrowed window = %#x, want %#x", got, want)
	}
}
