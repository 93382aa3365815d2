package iobuf

import (
	"encoding/binary"
	"math"
)

// Unsafe variants elide the bounds check done by their checked counterparts
// in consume.go/fill.go/peek.go/poke.go. Callers must have already proven
// the accessed subrange lies inside the window; misuse here can read or
// write outside the backing array's valid region and, in the worst case,
// outside the array itself, corrupting unrelated memory. These exist to
// support inlined hot loops where the bound has already been established
// by a surrounding length check.

// UnsafeConsumeU8 is ConsumeU8 without the bounds check.
func UnsafeConsumeU8[D Readable, S Seekable](t Buf[D, S]) uint8 {
	return uint8(unsafeConsumeUint(t.c, 1, nil))
}

// UnsafeConsumeU16LE is ConsumeU16LE without the bounds check.
func UnsafeConsumeU16LE[D Readable, S Seekable](t Buf[D, S]) uint16 {
	return uint16(unsafeConsumeUint(t.c, 2, binary.LittleEndian))
}

// UnsafeConsumeU16BE is ConsumeU16BE without the bounds check.
func UnsafeConsumeU16BE[D Readable, S Seekable](t Buf[D, S]) uint16 {
	return uint16(unsafeConsumeUint(t.c, 2, binary.BigEndian))
}

// UnsafeConsumeU32LE is ConsumeU32LE without the bounds check.
func UnsafeConsumeU32LE[D Readable, S Seekable](t Buf[D, S]) uint32 {
	return uint32(unsafeConsumeUint(t.c, 4, binary.LittleEndian))
}

// UnsafeConsumeU32BE is ConsumeU32BE without the bounds check.
func UnsafeConsumeU32BE[D Readable, S Seekable](t Buf[D, S]) uint32 {
	return uint32(unsafeConsumeUint(t.c, 4, binary.BigEndian))
}

// UnsafeConsumeU64LE is ConsumeU64LE without the bounds check.
func UnsafeConsumeU64LE[D Readable, S Seekable](t Buf[D, S]) uint64 {
	return unsafeConsumeUint(t.c, 8, binary.LittleEndian)
}

// UnsafeConsumeU64BE is ConsumeU64BE without the bounds check.
func UnsafeConsumeU64BE[D Readable, S Seekable](t Buf[D, S]) uint64 {
	return unsafeConsumeUint(t.c, 8, binary.BigEndian)
}

// UnsafeConsumeI64BE is ConsumeI64BE without the bounds check.
func UnsafeConsumeI64BE[D Readable, S Seekable](t Buf[D, S]) int64 {
	return int64(unsafeConsumeUint(t.c, 8, binary.BigEndian))
}

// UnsafeConsumeI64LE is ConsumeI64LE without the bounds check.
func UnsafeConsumeI64LE[D Readable, S Seekable](t Buf[D, S]) int64 {
	return int64(unsafeConsumeUint(t.c, 8, binary.LittleEndian))
}

// UnsafeConsumeF64BE is ConsumeF64BE without the bounds check.
func UnsafeConsumeF64BE[D Readable, S Seekable](t Buf[D, S]) float64 {
	return math.Float64frombits(unsafeConsumeUint(t.c, 8, binary.BigEndian))
}

// UnsafeConsumeF64LE is ConsumeF64LE without the bounds check.
func UnsafeConsumeF64LE[D Readable, S Seekable](t Buf[D, S]) float64 {
	return math.Float64frombits(unsafeConsumeUint(t.c, 8, binary.LittleEndian))
}

// UnsafeConsumeI8 is ConsumeI8 without the bounds check.
func UnsafeConsumeI8[D Readable, S Seekable](t Buf[D, S]) int8 {
	return int8(unsafeConsumeUint(t.c, 1, nil))
}

// UnsafeConsumeI16LE is ConsumeI16LE without the bounds check.
func UnsafeConsumeI16LE[D Readable, S Seekable](t Buf[D, S]) int16 {
	return int16(unsafeConsumeUint(t.c, 2, binary.LittleEndian))
}

// UnsafeConsumeI16BE is ConsumeI16BE without the bounds check.
func UnsafeConsumeI16BE[D Readable, S Seekable](t Buf[D, S]) int16 {
	return int16(unsafeConsumeUint(t.c, 2, binary.BigEndian))
}

// UnsafeConsumeI32LE is ConsumeI32LE without the bounds check.
func UnsafeConsumeI32LE[D Readable, S Seekable](t Buf[D, S]) int32 {
	return int32(unsafeConsumeUint(t.c, 4, binary.LittleEndian))
}

// UnsafeConsumeI32BE is ConsumeI32BE without the bounds check.
func UnsafeConsumeI32BE[D Readable, S Seekable](t Buf[D, S]) int32 {
	return int32(unsafeConsumeUint(t.c, 4, binary.BigEndian))
}

// UnsafeConsumeF32LE is ConsumeF32LE without the bounds check.
func UnsafeConsumeF32LE[D Readable, S Seekable](t Buf[D, S]) float32 {
	return math.Float32frombits(uint32(unsafeConsumeUint(t.c, 4, binary.LittleEndian)))
}

// UnsafeConsumeF32BE is ConsumeF32BE without the bounds check.
func UnsafeConsumeF32BE[D Readable, S Seekable](t Buf[D, S]) float32 {
	return math.Float32frombits(uint32(unsafeConsumeUint(t.c, 4, binary.BigEndian)))
}

// UnsafeConsumeBytes is ConsumeBytes without the bounds check.
func UnsafeConsumeBytes[D Readable, S Seekable](t Buf[D, S], n int) []byte {
	out := make([]byte, n)
	copy(out, t.c.buf[t.c.lo:t.c.lo+n])
	t.c.lo += n
	return out
}

// UnsafeFillU8 is FillU8 without the bounds check.
func UnsafeFillU8[S Seekable](t Buf[ReadWrite, S], v uint8) {
	unsafeFillUint(t.c, 1, nil, uint64(v))
}

// UnsafeFillU16LE is FillU16LE without the bounds check.
func UnsafeFillU16LE[S Seekable](t Buf[ReadWrite, S], v uint16) {
	unsafeFillUint(t.c, 2, binary.LittleEndian, uint64(v))
}

// UnsafeFillU16BE is FillU16BE without the bounds check.
func UnsafeFillU16BE[S Seekable](t Buf[ReadWrite, S], v uint16) {
	unsafeFillUint(t.c, 2, binary.BigEndian, uint64(v))
}

// UnsafeFillU32LE is FillU32LE without the bounds check.
func UnsafeFillU32LE[S Seekable](t Buf[ReadWrite, S], v uint32) {
	unsafeFillUint(t.c, 4, binary.LittleEndian, uint64(v))
}

// UnsafeFillU32BE is FillU32BE without the bounds check.
func UnsafeFillU32BE[S Seekable](t Buf[ReadWrite, S], v uint32) {
	unsafeFillUint(t.c, 4, binary.BigEndian, uint64(v))
}

// UnsafeFillU64LE is FillU64LE without the bounds check.
func UnsafeFillU64LE[S Seekable](t Buf[ReadWrite, S], v uint64) {
	unsafeFillUint(t.c, 8, binary.LittleEndian, v)
}

// UnsafeFillU64BE is FillU64BE without the bounds check.
func UnsafeFillU64BE[S Seekable](t Buf[ReadWrite, S], v uint64) {
	unsafeFillUint(t.c, 8, binary.BigEndian, v)
}

// UnsafeFillI8 is FillI8 without the bounds check.
func UnsafeFillI8[S Seekable](t Buf[ReadWrite, S], v int8) {
	unsafeFillUint(t.c, 1, nil, uint64(uint8(v)))
}

// UnsafeFillI16LE is FillI16LE without the bounds check.
func UnsafeFillI16LE[S Seekable](t Buf[ReadWrite, S], v int16) {
	unsafeFillUint(t.c, 2, binary.LittleEndian, uint64(uint16(v)))
}

// UnsafeFillI16BE is FillI16BE without the bounds check.
func UnsafeFillI16BE[S Seekable](t Buf[ReadWrite, S], v int16) {
	unsafeFillUint(t.c, 2, binary.BigEndian, uint64(uint16(v)))
}

// UnsafeFillI32LE is FillI32LE without the bounds check.
func UnsafeFillI32LE[S Seekable](t Buf[ReadWrite, S], v int32) {
	unsafeFillUint(t.c, 4, binary.LittleEndian, uint64(uint32(v)))
}

// UnsafeFillI32BE is FillI32BE without the bounds check.
func UnsafeFillI32BE[S Seekable](t Buf[ReadWrite, S], v int32) {
	unsafeFillUint(t.c, 4, binary.BigEndian, uint64(uint32(v)))
}

// UnsafeFillI64LE is FillI64LE without the bounds check.
func UnsafeFillI64LE[S Seekable](t Buf[ReadWrite, S], v int64) {
	unsafeFillUint(t.c, 8, binary.LittleEndian, uint64(v))
}

// UnsafeFillI64BE is FillI64BE without the bounds check.
func UnsafeFillI64BE[S Seekable](t Buf[ReadWrite, S], v int64) {
	unsafeFillUint(t.c, 8, binary.BigEndian, uint64(v))
}

// UnsafeFillF32LE is FillF32LE without the bounds check.
func UnsafeFillF32LE[S Seekable](t Buf[ReadWrite, S], v float32) {
	unsafeFillUint(t.c, 4, binary.LittleEndian, uint64(math.Float32bits(v)))
}

// UnsafeFillF32BE is FillF32BE without the bounds check.
func UnsafeFillF32BE[S Seekable](t Buf[ReadWrite, S], v float32) {
	unsafeFillUint(t.c, 4, binary.BigEndian, uint64(math.Float32bits(v)))
}

// UnsafeFillF64LE is FillF64LE without the bounds check.
func UnsafeFillF64LE[S Seekable](t Buf[ReadWrite, S], v float64) {
	unsafeFillUint(t.c, 8, binary.LittleEndian, math.Float64bits(v))
}

// UnsafeFillF64BE is FillF64BE without the bounds check.
func UnsafeFillF64BE[S Seekable](t Buf[ReadWrite, S], v float64) {
	unsafeFillUint(t.c, 8, binary.BigEndian, math.Float64bits(v))
}

// UnsafeFillBytes is FillBytes without the bounds check.
func UnsafeFillBytes[S Seekable](t Buf[ReadWrite, S], p []byte) {
	copy(t.c.buf[t.c.lo:t.c.lo+len(p)], p)
	t.c.lo += len(p)
}

// UnsafeFillString is FillString without the bounds check.
func UnsafeFillString[S Seekable](t Buf[ReadWrite, S], s string) {
	UnsafeFillBytes(t, []byte(s))
}

// UnsafePeekU8 is PeekU8 without the bounds check.
func UnsafePeekU8[D Readable, S SeekPerm](t Buf[D, S], pos int) uint8 {
	return uint8(unsafePeekUint(t.c, pos, 1, nil))
}

// UnsafePeekU16LE is PeekU16LE without the bounds check.
func UnsafePeekU16LE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint16 {
	return uint16(unsafePeekUint(t.c, pos, 2, binary.LittleEndian))
}

// UnsafePeekU16BE is PeekU16BE without the bounds check.
func UnsafePeekU16BE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint16 {
	return uint16(unsafePeekUint(t.c, pos, 2, binary.BigEndian))
}

// UnsafePeekU32LE is PeekU32LE without the bounds check.
func UnsafePeekU32LE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint32 {
	return uint32(unsafePeekUint(t.c, pos, 4, binary.LittleEndian))
}

// UnsafePeekU32BE is PeekU32BE without the bounds check.
func UnsafePeekU32BE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint32 {
	return uint32(unsafePeekUint(t.c, pos, 4, binary.BigEndian))
}

// UnsafePeekU64LE is PeekU64LE without the bounds check.
func UnsafePeekU64LE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint64 {
	return unsafePeekUint(t.c, pos, 8, binary.LittleEndian)
}

// UnsafePeekU64BE is PeekU64BE without the bounds check.
func UnsafePeekU64BE[D Readable, S SeekPerm](t Buf[D, S], pos int) uint64 {
	return unsafePeekUint(t.c, pos, 8, binary.BigEndian)
}

// UnsafePeekI8 is PeekI8 without the bounds check.
func UnsafePeekI8[D Readable, S SeekPerm](t Buf[D, S], pos int) int8 {
	return int8(unsafePeekUint(t.c, pos, 1, nil))
}

// UnsafePeekI16LE is PeekI16LE without the bounds check.
func UnsafePeekI16LE[D Readable, S SeekPerm](t Buf[D, S], pos int) int16 {
	return int16(unsafePeekUint(t.c, pos, 2, binary.LittleEndian))
}

// UnsafePeekI16BE is PeekI16BE without the bounds check.
func UnsafePeekI16BE[D Readable, S SeekPerm](t Buf[D, S], pos int) int16 {
	return int16(unsafePeekUint(t.c, pos, 2, binary.BigEndian))
}

// UnsafePeekI32LE is PeekI32LE without the bounds check.
func UnsafePeekI32LE[D Readable, S SeekPerm](t Buf[D, S], pos int) int32 {
	return int32(unsafePeekUint(t.c, pos, 4, binary.LittleEndian))
}

// UnsafePeekI32BE is PeekI32BE without the bounds check.
func UnsafePeekI32BE[D Readable, S SeekPerm](t Buf[D, S], pos int) int32 {
	return int32(unsafePeekUint(t.c, pos, 4, binary.BigEndian))
}

// UnsafePeekI64LE is PeekI64LE without the bounds check.
func UnsafePeekI64LE[D Readable, S SeekPerm](t Buf[D, S], pos int) int64 {
	return int64(unsafePeekUint(t.c, pos, 8, binary.LittleEndian))
}

// UnsafePeekI64BE is PeekI64BE without the bounds check.
func UnsafePeekI64BE[D Readable, S SeekPerm](t Buf[D, S], pos int) int64 {
	return int64(unsafePeekUint(t.c, pos, 8, binary.BigEndian))
}

// UnsafePeekF32LE is PeekF32LE without the bounds check.
func UnsafePeekF32LE[D Readable, S SeekPerm](t Buf[D, S], pos int) float32 {
	return math.Float32frombits(uint32(unsafePeekUint(t.c, pos, 4, binary.LittleEndian)))
}

// UnsafePeekF32BE is PeekF32BE without the bounds check.
func UnsafePeekF32BE[D Readable, S SeekPerm](t Buf[D, S], pos int) float32 {
	return math.Float32frombits(uint32(unsafePeekUint(t.c, pos, 4, binary.BigEndian)))
}

// UnsafePeekF64LE is PeekF64LE without the bounds check.
func UnsafePeekF64LE[D Readable, S SeekPerm](t Buf[D, S], pos int) float64 {
	return math.Float64frombits(unsafePeekUint(t.c, pos, 8, binary.LittleEndian))
}

// UnsafePeekF64BE is PeekF64BE without the bounds check.
func UnsafePeekF64BE[D Readable, S SeekPerm](t Buf[D, S], pos int) float64 {
	return math.Float64frombits(unsafePeekUint(t.c, pos, 8, binary.BigEndian))
}

// UnsafePeekBytes is PeekBytes without the bounds check.
func UnsafePeekBytes[D Readable, S SeekPerm](t Buf[D, S], pos, n int) []byte {
	base := t.c.lo + pos
	out := make([]byte, n)
	copy(out, t.c.buf[base:base+n])
	return out
}

// UnsafePeekString is PeekString without the bounds check.
func UnsafePeekString[D Readable, S SeekPerm](t Buf[D, S], pos, n int) string {
	return string(UnsafePeekBytes(t, pos, n))
}

// UnsafePokeU8 is PokeU8 without the bounds check.
func UnsafePokeU8[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint8) {
	unsafePokeUint(t.c, pos, 1, nil, uint64(v))
}

// UnsafePokeU16LE is PokeU16LE without the bounds check.
func UnsafePokeU16LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint16) {
	unsafePokeUint(t.c, pos, 2, binary.LittleEndian, uint64(v))
}

// UnsafePokeU16BE is PokeU16BE without the bounds check.
func UnsafePokeU16BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint16) {
	unsafePokeUint(t.c, pos, 2, binary.BigEndian, uint64(v))
}

// UnsafePokeU32LE is PokeU32LE without the bounds check.
func UnsafePokeU32LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint32) {
	unsafePokeUint(t.c, pos, 4, binary.LittleEndian, uint64(v))
}

// UnsafePokeU32BE is PokeU32BE without the bounds check.
func UnsafePokeU32BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint32) {
	unsafePokeUint(t.c, pos, 4, binary.BigEndian, uint64(v))
}

// UnsafePokeU64LE is PokeU64LE without the bounds check.
func UnsafePokeU64LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint64) {
	unsafePokeUint(t.c, pos, 8, binary.LittleEndian, v)
}

// UnsafePokeU64BE is PokeU64BE without the bounds check.
func UnsafePokeU64BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v uint64) {
	unsafePokeUint(t.c, pos, 8, binary.BigEndian, v)
}

// UnsafePokeI8 is PokeI8 without the bounds check.
func UnsafePokeI8[S SeekPerm](t Buf[ReadWrite, S], pos int, v int8) {
	unsafePokeUint(t.c, pos, 1, nil, uint64(uint8(v)))
}

// UnsafePokeI16LE is PokeI16LE without the bounds check.
func UnsafePokeI16LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int16) {
	unsafePokeUint(t.c, pos, 2, binary.LittleEndian, uint64(uint16(v)))
}

// UnsafePokeI16BE is PokeI16BE without the bounds check.
func UnsafePokeI16BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int16) {
	unsafePokeUint(t.c, pos, 2, binary.BigEndian, uint64(uint16(v)))
}

// UnsafePokeI32LE is PokeI32LE without the bounds check.
func UnsafePokeI32LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int32) {
	unsafePokeUint(t.c, pos, 4, binary.LittleEndian, uint64(uint32(v)))
}

// UnsafePokeI32BE is PokeI32BE without the bounds check.
func UnsafePokeI32BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int32) {
	unsafePokeUint(t.c, pos, 4, binary.BigEndian, uint64(uint32(v)))
}

// UnsafePokeI64LE is PokeI64LE without the bounds check.
func UnsafePokeI64LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int64) {
	unsafePokeUint(t.c, pos, 8, binary.LittleEndian, uint64(v))
}

// UnsafePokeI64BE is PokeI64BE without the bounds check.
func UnsafePokeI64BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v int64) {
	unsafePokeUint(t.c, pos, 8, binary.BigEndian, uint64(v))
}

// UnsafePokeF32LE is PokeF32LE without the bounds check.
func UnsafePokeF32LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v float32) {
	unsafePokeUint(t.c, pos, 4, binary.LittleEndian, uint64(math.Float32bits(v)))
}

// UnsafePokeF32BE is PokeF32BE without the bounds check.
func UnsafePokeF32BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v float32) {
	unsafePokeUint(t.c, pos, 4, binary.BigEndian, uint64(math.Float32bits(v)))
}

// UnsafePokeF64LE is PokeF64LE without the bounds check.
func UnsafePokeF64LE[S SeekPerm](t Buf[ReadWrite, S], pos int, v float64) {
	unsafePokeUint(t.c, pos, 8, binary.LittleEndian, math.Float64bits(v))
}

// UnsafePokeF64BE is PokeF64BE without the bounds check.
func UnsafePokeF64BE[S SeekPerm](t Buf[ReadWrite, S], pos int, v float64) {
	unsafePokeUint(t.c, pos, 8, binary.BigEndian, math.Float64bits(v))
}

// UnsafePokeBytes is PokeBytes without the bounds check.
func UnsafePokeBytes[S SeekPerm](t Buf[ReadWrite, S], pos int, p []byte) {
	base := t.c.lo + pos
	copy(t.c.buf[base:base+len(p)], p)
}

// UnsafePokeString is PokeString without the bounds check.
func UnsafePokeString[S SeekPerm](t Buf[ReadWrite, S], pos int, s string) {
	UnsafePokeBytes(t, pos, []byte(s))
}

// UnsafeFillBinProtValue is FillBinProtValue without the bounds check.
func UnsafeFillBinProtValue[S Seekable, T any](t Buf[ReadWrite, S], write BinProtWriter[T], value T) {
	c := t.c
	next := write(c.buf, c.lo, value)
	c.lo = next
}

// UnsafeConsumeBinProtValue is ConsumeBinProtValue without the bounds check;
// like its checked counterpart it still surfaces whatever error read
// itself returns.
func UnsafeConsumeBinProtValue[D Readable, S Seekable, T any](t Buf[D, S], read BinProtReader[T]) (T, error) {
	var zero T
	c := t.c
	v, next, err := read(c.buf, c.lo)
	if err != nil {
		return zero, err
	}
	c.lo = next
	return v, nil
}

// UnsafePeekBinProtValue is PeekBinProtValue without the bounds check.
func UnsafePeekBinProtValue[D Readable, S SeekPerm, T any](t Buf[D, S], pos int, read BinProtReader[T]) (T, int, error) {
	var zero T
	c := t.c
	base := c.lo + pos
	v, next, err := read(c.buf, base)
	if err != nil {
		return zero, 0, err
	}
	return v, next - base, nil
}

// UnsafePokeBinProtValue is PokeBinProtValue without the bounds check.
func UnsafePokeBinProtValue[S SeekPerm, T any](t Buf[ReadWrite, S], pos int, write BinProtWriter[T], value T) int {
	c := t.c
	before := c.lo + pos
	next := write(c.buf, before, value)
	return next - before
}
