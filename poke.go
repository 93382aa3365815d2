package iobuf

import (
	"encoding/binary"
	"math"
	"strconv"
)

// PokeU8 writes one byte at the window-relative offset pos.
func PokeU8[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint8) {
	pokeUint(t.c, pos, 1, nil, uint64(v))
}

// PokeU16LE writes a little-endian uint16 at pos.
func PokeU16LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint16) {
	pokeUint(t.c, pos, 2, binary.LittleEndian, uint64(v))
}

// PokeU16BE writes a big-endian uint16 at pos.
func PokeU16BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint16) {
	pokeUint(t.c, pos, 2, binary.BigEndian, uint64(v))
}

// PokeU32LE writes a little-endian uint32 at pos.
func PokeU32LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint32) {
	pokeUint(t.c, pos, 4, binary.LittleEndian, uint64(v))
}

// PokeU32BE writes a big-endian uint32 at pos.
func PokeU32BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint32) {
	pokeUint(t.c, pos, 4, binary.BigEndian, uint64(v))
}

// PokeU64LE writes a little-endian uint64 at pos.
func PokeU64LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint64) {
	pokeUint(t.c, pos, 8, binary.LittleEndian, v)
}

// PokeU64BE writes a big-endian uint64 at pos.
func PokeU64BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint64) {
	pokeUint(t.c, pos, 8, binary.BigEndian, v)
}

// PokeI8 writes one signed byte at pos.
func PokeI8[S SeekPerm](t Buf[ReadWrite, S], pos int, v int8) {
	pokeUint(t.c, pos, 1, nil, uint64(uint8(v)))
}

// PokeI16LE writes a little-endian int16 at pos.
func PokeI16LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int16) {
	pokeUint(t.c, pos, 2, binary.LittleEndian, uint64(uint16(v)))
}

// PokeI16BE writes a big-endian int16 at pos.
func PokeI16BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int16) {
	pokeUint(t.c, pos, 2, binary.BigEndian, uint64(uint16(v)))
}

// PokeI32LE writes a little-endian int32 at pos.
func PokeI32LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int32) {
	pokeUint(t.c, pos, 4, binary.LittleEndian, uint64(uint32(v)))
}

// PokeI32BE writes a big-endian int32 at pos.
func PokeI32BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int32) {
	pokeUint(t.c, pos, 4, binary.BigEndian, uint64(uint32(v)))
}

// PokeI64LE writes a little-endian int64 at pos.
func PokeI64LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int64) {
	pokeUint(t.c, pos, 8, binary.LittleEndian, uint64(v))
}

// PokeI64BE writes a big-endian int64 at pos.
func PokeI64BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int64) {
	pokeUint(t.c, pos, 8, binary.BigEndian, uint64(v))
}

// PokeF32LE writes a little-endian IEEE-754 float32 at pos.
func PokeF32LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v float32) {
	pokeUint(t.c, pos, 4, binary.LittleEndian, uint64(math.Float32bits(v)))
}

// PokeF32BE writes a big-endian IEEE-754 float32 at pos.
func PokeF32BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v float32) {
	pokeUint(t.c, pos, 4, binary.BigEndian, uint64(math.Float32bits(v)))
}

// PokeF64LE writes a little-endian IEEE-754 float64 at pos.
func PokeF64LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v float64) {
	pokeUint(t.c, pos, 8, binary.LittleEndian, math.Float64bits(v))
}

// PokeF64BE writes a big-endian IEEE-754 float64 at pos.
func PokeF64BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v float64) {
	pokeUint(t.c, pos, 8, binary.BigEndian, math.Float64bits(v))
}

// PokeBytes writes p verbatim at pos, without advancing lo or hi.
func PokeBytes[S SeekPerm](t Buf[ReadWrite, S], pos int, p []byte) {
	c := t.c
	if pos < 0 || pos+len(p) > c.hi-c.lo {
		boundsPanic("PokeBytes", len(p), c.hi-c.lo-pos)
	}
	base := c.lo + pos
	copy(c.buf[base:base+len(p)], p)
}

// PokeString is PokeBytes with a string source.
func PokeString[S SeekPerm](t Buf[ReadWrite, S], pos int, s string) {
	PokeBytes(t, pos, []byte(s))
}

// PokeDecimal writes the ASCII decimal representation of i at pos, without
// advancing lo or hi, and returns the number of bytes written so callers
// can advance manually if desired.
func PokeDecimal[S SeekPerm](t Buf[ReadWrite, S], pos int, i int64) int {
	c := t.c
	var scratch [20]byte
	digits := strconv.AppendInt(scratch[:0], i, 10)
	if pos < 0 || pos+len(digits) > c.hi-c.lo {
		boundsPanic("PokeDecimal", len(digits), c.hi-c.lo-pos)
	}
	base := c.lo + pos
	copy(c.buf[base:base+len(digits)], digits)
	return len(digits)
}
