package iobuf

import (
	"encoding/binary"
	"math"
)

// Peek and Poke are parameterized by a window-relative pos and never move
// lo or hi; they are the only family usable on a NoSeek handle, which is
// what makes them safe to hand to sub-parsers.

// PeekU8 reads one byte at the window-relative offset pos.
func PeekU8[D Readable, S SeekPerm](t Buf[D, S], pos int) uint8 {
	return uint8(peekUint(t.c, pos, 1, nil))
}

// PeekU16LE reads a little-endian uint16 at pos.
func PeekU16LE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint16 {
	return uint16(peekUint(t.c, pos, 2, binary.LittleEndian))
}

// PeekU16BE reads a big-endian uint16 at pos.
func PeekU16BE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint16 {
	return uint16(peekUint(t.c, pos, 2, binary.BigEndian))
}

// PeekU32LE reads a little-endian uint32 at pos.
func PeekU32LE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint32 {
	return uint32(peekUint(t.c, pos, 4, binary.LittleEndian))
}

// PeekU32BE reads a big-endian uint32 at pos.
func PeekU32BE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint32 {
	return uint32(peekUint(t.c, pos, 4, binary.BigEndian))
}

// PeekU64LE reads a little-endian uint64 at pos.
func PeekU64LE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint64 {
	return peekUint(t.c, pos, 8, binary.LittleEndian)
}

// PeekU64BE reads a big-endian uint64 at pos.
func PeekU64BE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint64 {
	return peekUint(t.c, pos, 8, binary.BigEndian)
}

// PeekI8 reads one signed byte at pos.
func PeekI8[D Readable, S SeekPerm](t Buf[D, S], pos int) int8 {
	return int8(peekUint(t.c, pos, 1, nil))
}

// PeekI16LE reads a little-endian int16 at pos.
func PeekI16LE[D Readable, S SeekPerm](t Buf[D, S], pos int) int16 {
	return int16(peekUint(t.c, pos, 2, binary.LittleEndian))
}

// PeekI16BE reads a big-endian int16 at pos.
func PeekI16BE[D Readable, S SeekPerm](t Buf[D, S], pos int) int16 {
	return int16(peekUint(t.c, pos, 2, binary.BigEndian))
}

// PeekI32LE reads a little-endian int32 at pos.
func PeekI32LE[D Readable, S SeekPerm](t Buf[D, S], pos int) int32 {
	return int32(peekUint(t.c, pos, 4, binary.LittleEndian))
}

// PeekI32BE reads a big-endian int32 at pos.
func PeekI32BE[D Readable, S SeekPerm](t Buf[D, S], pos int) int32 {
	return int32(peekUint(t.c, pos, 4, binary.BigEndian))
}

// PeekI64LE reads a little-endian int64 at pos.
func PeekI64LE[D Readable, S SeekPerm](t Buf[D, S], pos int) int64 {
	return int64(peekUint(t.c, pos, 8, binary.LittleEndian))
}

// PeekI64BE reads a big-endian int64 at pos.
func PeekI64BE[D Readable, S SeekPerm](t Buf[D, S], pos int) int64 {
	return int64(peekUint(t.c, pos, 8, binary.BigEndian))
}

// PeekF32LE reads a little-endian IEEE-754 float32 at pos.
func PeekF32LE[D Readable, S SeekPerm](t Buf[D, S], pos int) float32 {
	return math.Float32frombits(uint32(peekUint(t.c, pos, 4, binary.LittleEndian)))
}

// PeekF32BE reads a big-endian IEEE-754 float32 at pos.
func PeekF32BE[D Readable, S SeekPerm](t Buf[D, S], pos int) float32 {
	return math.Float32frombits(uint32(peekUint(t.c, pos, 4, binary.BigEndian)))
}

// PeekF64LE reads a little-endian IEEE-754 float64 at pos.
func PeekF64LE[D Readable, S SeekPerm](t Buf[D, S], pos int) float64 {
	return math.Float64frombits(peekUint(t.c, pos, 8, binary.LittleEndian))
}

// PeekF64BE reads a big-endian IEEE-754 float64 at pos.
func PeekF64BE[D Readable, S SeekPerm](t Buf[D, S], pos int) float64 {
	return math.Float64frombits(peekUint(t.c, pos, 8, binary.BigEndian))
}

// PeekBytes copies n bytes at pos into a freshly allocated slice, without
// advancing lo or hi.
func PeekBytes[D Readable, S SeekPerm](t Buf[D, S], pos, n int) []byte {
	c := t.c
	if pos < 0 || n < 0 || pos+n > c.hi-c.lo {
		boundsPanic("PeekBytes", n, c.hi-c.lo-pos)
	}
	base := c.lo + pos
	out := make([]byte, n)
	copy(out, c.buf[base:base+n])
	return out
}

// PeekString is PeekBytes with a string result.
func PeekString[D Readable, S SeekPerm](t Buf[D, S], pos, n int) string {
	return string(PeekBytes(t, pos, n))
}

// PeekDecimal parses the ASCII decimal representation of a signed integer
// at the window-relative offset pos (an optional leading '-' followed by
// one or more digits), without advancing lo or hi. It returns the decoded
// value and the number of bytes the decimal token occupied, mirroring
// ConsumeDecimal's grammar but reporting the length explicitly since there
// is no cursor here to advance. Panics if pos does not begin with a valid
// decimal representation.
func PeekDecimal[D Readable, S SeekPerm](t Buf[D, S], pos int) (int64, int) {
	c := t.c
	if pos < 0 || pos > c.hi-c.lo {
		boundsPanic("PeekDecimal", 0, c.hi-c.lo-pos)
	}
	base := c.lo + pos
	i := base
	neg := false
	if i < c.hi && c.buf[i] == '-' {
		neg = true
		i++
	}
	start := i
	var mag uint64
	for i < c.hi && c.buf[i] >= '0' && c.buf[i] <= '9' {
		mag = mag*10 + uint64(c.buf[i]-'0')
		i++
	}
	if i == start {
		boundsPanicf("PeekDecimal", "no decimal digits at pos")
	}
	n := i - base
	if neg {
		return -int64(mag), n
	}
	return int64(mag), n
}
