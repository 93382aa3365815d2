package iobuf

import "encoding/binary"

// BinProtReader decodes a T starting at pos in buf, returning the decoded
// value and the position just past it. Concrete implementations are an
// external collaborator; this package only defines the shape, and the
// optional 4-byte-length-prefix framing around it that FillBinProt and
// ConsumeBinProt add. FillBinProtValue and ConsumeBinProtValue use the same
// shape unframed.
type BinProtReader[T any] func(buf []byte, pos int) (T, int, error)

// BinProtWriter encodes v into buf at pos, returning the position just past
// the encoded bytes. buf is guaranteed to have at least Sizer(v) bytes
// available starting at pos.
type BinProtWriter[T any] func(buf []byte, pos int, v T) int

// BinProtSizer returns the number of bytes Writer would encode v into,
// without writing anything. Fill and Poke variants call this before writing
// to decide whether the window has room for the payload (plus, for
// FillBinProt, the length prefix).
type BinProtSizer[T any] func(v T) int

// FillBinProt writes a 4-byte little-endian length prefix followed by
// value's bin-prot encoding, advancing lo by the total bytes written.
// Panics (without writing anything) if the window cannot hold prefix +
// payload. This 4-byte prefix is intentionally distinct from the 8-byte
// prefix used by the higher-level framed-reader/writer external
// collaborators used for a larger framed-reader/writer abstraction; the two are not interchangeable.
func FillBinProt[S Seekable, T any](t Buf[ReadWrite, S], size BinProtSizer[T], write BinProtWriter[T], value T) {
	c := t.c
	payloadLen := size(value)
	total := 4 + payloadLen
	if c.hi-c.lo < total {
		boundsPanic("FillBinProt", total, c.hi-c.lo)
	}
	binary.LittleEndian.PutUint32(c.buf[c.lo:c.lo+4], uint32(payloadLen))
	write(c.buf, c.lo+4, value)
	c.lo += total
}

// ConsumeBinProt reads a 4-byte length prefix, then that many bytes as a
// bin-prot value, advancing lo by the total. Returns ErrShortFrame (leaving
// lo untouched) if the window holds fewer than 4+prefix bytes, enabling a
// caller to retry once more bytes have arrived.
func ConsumeBinProt[D Readable, S Seekable, T any](t Buf[D, S], read BinProtReader[T]) (T, error) {
	var zero T
	c := t.c
	if c.hi-c.lo < 4 {
		return zero, ErrShortFrame
	}
	payloadLen := int(binary.LittleEndian.Uint32(c.buf[c.lo : c.lo+4]))
	total := 4 + payloadLen
	if c.hi-c.lo < total {
		return zero, ErrShortFrame
	}
	v, _, err := read(c.buf, c.lo+4)
	if err != nil {
		return zero, err
	}
	c.lo += total
	return v, nil
}

// FillBinProtValue writes value's bin-prot encoding at lo with no length
// prefix, advancing lo by the encoded size. This is the unframed sibling of
// FillBinProt: callers who already know the payload's length out of band
// (or are relying on the reader to know how much of the window it needs)
// use this instead of paying for a prefix they don't need.
func FillBinProtValue[S Seekable, T any](t Buf[ReadWrite, S], size BinProtSizer[T], write BinProtWriter[T], value T) {
	c := t.c
	payloadLen := size(value)
	if c.hi-c.lo < payloadLen {
		boundsPanic("FillBinProtValue", payloadLen, c.hi-c.lo)
	}
	write(c.buf, c.lo, value)
	c.lo += payloadLen
}

// ConsumeBinProtValue decodes a bin-prot value at lo with no length prefix,
// advancing lo by the bytes read reports having consumed. Unlike
// ConsumeBinProt, a short window is surfaced by whatever error read itself
// returns rather than ErrShortFrame, since there is no prefix here to check
// against up front.
func ConsumeBinProtValue[D Readable, S Seekable, T any](t Buf[D, S], read BinProtReader[T]) (T, error) {
	var zero T
	c := t.c
	v, next, err := read(c.buf, c.lo)
	if err != nil {
		return zero, err
	}
	c.lo = next
	return v, nil
}

// PeekBinProtValue decodes a bin-prot value at the window-relative offset
// pos with no length prefix and no framing, without advancing lo or hi. It
// returns the decoded value alongside the number of bytes read consumed, the
// positional analogue of ConsumeBinProtValue.
func PeekBinProtValue[D Readable, S SeekPerm, T any](t Buf[D, S], pos int, read BinProtReader[T]) (T, int, error) {
	var zero T
	c := t.c
	if pos < 0 || pos > c.hi-c.lo {
		boundsPanic("PeekBinProtValue", 0, c.hi-c.lo-pos)
	}
	base := c.lo + pos
	v, next, err := read(c.buf, base)
	if err != nil {
		return zero, 0, err
	}
	return v, next - base, nil
}

// PokeBinProtValue writes value's bin-prot encoding at the window-relative
// offset pos with no length prefix, without advancing lo or hi. It returns
// the number of bytes written, the positional analogue of FillBinProtValue.
func PokeBinProtValue[S SeekPerm, T any](t Buf[ReadWrite, S], pos int, size BinProtSizer[T], write BinProtWriter[T], value T) int {
	c := t.c
	payloadLen := size(value)
	if pos < 0 || pos+payloadLen > c.hi-c.lo {
		boundsPanic("PokeBinProtValue", payloadLen, c.hi-c.lo-pos)
	}
	write(c.buf, c.lo+pos, value)
	return payloadLen
}
