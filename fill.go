package iobuf

import (
	"encoding/binary"
	"math"
	"strconv"
)

// FillU8 writes one byte at lo and advances lo by 1.
func FillU8[S Seekable](t Buf[ReadWrite, S], v uint8) {
	fillUint(t.c, 1, nil, uint64(v))
}

// FillU16LE writes a little-endian uint16 at lo and advances lo by 2.
func FillU16LE[S Seekable](t Buf[ReadWrite, S], v uint16) {
	fillUint(t.c, 2, binary.LittleEndian, uint64(v))
}

// FillU16BE writes a big-endian uint16 at lo and advances lo by 2.
func FillU16BE[S Seekable](t Buf[ReadWrite, S], v uint16) {
	fillUint(t.c, 2, binary.BigEndian, uint64(v))
}

// FillU32LE writes a little-endian uint32 at lo and advances lo by 4.
func FillU32LE[S Seekable](t Buf[ReadWrite, S], v uint32) {
	fillUint(t.c, 4, binary.LittleEndian, uint64(v))
}

// FillU32BE writes a big-endian uint32 at lo and advances lo by 4.
func FillU32BE[S Seekable](t Buf[ReadWrite, S], v uint32) {
	fillUint(t.c, 4, binary.BigEndian, uint64(v))
}

// FillU64LE writes a little-endian uint64 at lo and advances lo by 8.
func FillU64LE[S Seekable](t Buf[ReadWrite, S], v uint64) {
	fillUint(t.c, 8, binary.LittleEndian, v)
}

// FillU64BE writes a big-endian uint64 at lo and advances lo by 8.
func FillU64BE[S Seekable](t Buf[ReadWrite, S], v uint64) {
	fillUint(t.c, 8, binary.BigEndian, v)
}

// FillI8 writes one signed byte at lo and advances lo by 1.
func FillI8[S Seekable](t Buf[ReadWrite, S], v int8) {
	fillUint(t.c, 1, nil, uint64(uint8(v)))
}

// FillI16LE writes a little-endian int16 at lo and advances lo by 2.
func FillI16LE[S Seekable](t Buf[ReadWrite, S], v int16) {
	fillUint(t.c, 2, binary.LittleEndian, uint64(uint16(v)))
}

// FillI16BE writes a big-endian int16 at lo and advances lo by 2.
func FillI16BE[S Seekable](t Buf[ReadWrite, S], v int16) {
	fillUint(t.c, 2, binary.BigEndian, uint64(uint16(v)))
}

// FillI32LE writes a little-endian int32 at lo and advances lo by 4.
func FillI32LE[S Seekable](t Buf[ReadWrite, S], v int32) {
	fillUint(t.c, 4, binary.LittleEndian, uint64(uint32(v)))
}

// FillI32BE writes a big-endian int32 at lo and advances lo by 4.
func FillI32BE[S Seekable](t Buf[ReadWrite, S], v int32) {
	fillUint(t.c, 4, binary.BigEndian, uint64(uint32(v)))
}

// FillI64LE writes a little-endian int64 at lo and advances lo by 8.
func FillI64LE[S Seekable](t Buf[ReadWrite, S], v int64) {
	fillUint(t.c, 8, binary.LittleEndian, uint64(v))
}

// FillI64BE writes a big-endian int64 at lo and advances lo by 8.
func FillI64BE[S Seekable](t Buf[ReadWrite, S], v int64) {
	fillUint(t.c, 8, binary.BigEndian, uint64(v))
}

// FillF32LE writes a little-endian IEEE-754 float32 at lo and advances lo
// by 4.
func FillF32LE[S Seekable](t Buf[ReadWrite, S], v float32) {
	fillUint(t.c, 4, binary.LittleEndian, uint64(math.Float32bits(v)))
}

// FillF32BE writes a big-endian IEEE-754 float32 at lo and advances lo by
// 4.
func FillF32BE[S Seekable](t Buf[ReadWrite, S], v float32) {
	fillUint(t.c, 4, binary.BigEndian, uint64(math.Float32bits(v)))
}

// FillF64LE writes a little-endian IEEE-754 float64 at lo and advances lo
// by 8.
func FillF64LE[S Seekable](t Buf[ReadWrite, S], v float64) {
	fillUint(t.c, 8, binary.LittleEndian, math.Float64bits(v))
}

// FillF64BE writes a big-endian IEEE-754 float64 at lo and advances lo by
// 8.
func FillF64BE[S Seekable](t Buf[ReadWrite, S], v float64) {
	fillUint(t.c, 8, binary.BigEndian, math.Float64bits(v))
}

// FillBytes writes p verbatim at lo and advances lo by len(p). Panics if
// the window cannot hold all of p.
func FillBytes[S Seekable](t Buf[ReadWrite, S], p []byte) {
	c := t.c
	if c.hi-c.lo < len(p) {
		boundsPanic("FillBytes", len(p), c.hi-c.lo)
	}
	copy(c.buf[c.lo:c.lo+len(p)], p)
	c.lo += len(p)
}

// FillString is FillBytes with a string source.
func FillString[S Seekable](t Buf[ReadWrite, S], s string) {
	FillBytes(t, []byte(s))
}

// FillDecimal writes the ASCII decimal representation of i (no separators,
// no terminator) at lo and advances lo by the number of bytes written.
// Panics if the window is too small. MinInt64 is rendered with its native
// "-9223372036854775808" form, matching strconv.AppendInt.
func FillDecimal[S Seekable](t Buf[ReadWrite, S], i int64) {
	c := t.c
	var scratch [20]byte
	digits := strconv.AppendInt(scratch[:0], i, 10)
	if c.hi-c.lo < len(digits) {
		boundsPanic("FillDecimal", len(digits), c.hi-c.lo)
	}
	copy(c.buf[c.lo:c.lo+len(digits)], digits)
	c.lo += len(digits)
}
