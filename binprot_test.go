package iobuf

import (
	"encoding/binary"
	"testing"
)

// A minimal bin-prot pair for a uint32, used to exercise FillBinProt /
// ConsumeBinProt without depending on an external codec.
func u32Sizer(v uint32) int { return 4 }

func u32Writer(buf []byte, pos int, v uint32) int {
	binary.BigEndian.PutUint32(buf[pos:pos+4], v)
	return pos + 4
}

func u32Reader(buf []byte, pos int) (uint32, int, error) {
	return binary.BigEndian.Uint32(buf[pos : pos+4]), pos + 4, nil
}

// Scenario 6: bin-prot framing round-trip.
func TestBinProtRoundTrip(t *testing.T) {
	b := Create(32)
	FillBinProt(b, u32Sizer, u32Writer, uint32(0xcafef00d))
	FlipLo(b)
	got, err := ConsumeBinProt(b, u32Reader)
	if err != nil {
		t.Fatalf("ConsumeBinProt: %v", err)
	}
	if got != 0xcafef00d {
		t.Fatalf("ConsumeBinProt = %#x, want 0xcafef00d", got)
	}
	if !IsEmpty(b) {
		t.Fatal("ConsumeBinProt did not consume the full frame")
	}
}

func TestConsumeBinProtShortFrameLeavesWindowUntouched(t *testing.T) {
	b := Create(32)
	FillBinProt(b, u32Sizer, u32Writer, uint32(1))
	FlipLo(b)

	// Truncate the window so only the length prefix is visible.
	Resize(b, 4)
	lo0, hi0 := ExpertOf(b).Lo(), ExpertOf(b).Hi()

	_, err := ConsumeBinProt(b, u32Reader)
	if err != ErrShortFrame {
		t.Fatalf("err = %v, want ErrShortFrame", err)
	}

	e := ExpertOf(b)
	if e.Lo() != lo0 || e.Hi() != hi0 {
		t.Fatal("ConsumeBinProt moved the window on a short frame")
	}
}

func TestFillBinProtTooSmallPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("FillBinProt into a too-small window did not panic")
		}
	}()
	b := Create(3)
	FillBinProt(b, u32Sizer, u32Writer, uint32(1))
}
