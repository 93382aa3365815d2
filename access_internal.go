package iobuf

import "encoding/binary"

// readUint and writeUint are the single definition the whole accessor
// matrix is generated from (Design Note "Unsafe accessor duplication"):
// every exported Consume/Fill/Peek/Poke/Unsafe function for every integer
// and float width is a thin wrapper over these two, differing only in
// width, byte order, and whether the caller already validated bounds.
//
// Endianness is delegated to encoding/binary.ByteOrder, the same choice
// hayabusa-cloud-framer's internal/bo package makes rather than hand-rolling
// shifts.
func readUint(b []byte, width int, order binary.ByteOrder) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(order.Uint16(b))
	case 4:
		return uint64(order.Uint32(b))
	case 8:
		return order.Uint64(b)
	default:
		panic("iobuf: unsupported width")
	}
}

func writeUint(b []byte, width int, order binary.ByteOrder, v uint64) {
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	case 8:
		order.PutUint64(b, v)
	default:
		panic("iobuf: unsupported width")
	}
}

// consumeUint reads width bytes at lo, advances lo by width. Panics with a
// BoundsError if the window holds fewer than width bytes; no bytes are
// transferred and lo is left unchanged in that case.
func consumeUint(c *core, width int, order binary.ByteOrder) uint64 {
	if c.hi-c.lo < width {
		boundsPanic("Consume", width, c.hi-c.lo)
	}
	v := readUint(c.buf[c.lo:c.lo+width], width, order)
	c.lo += width
	return v
}

func unsafeConsumeUint(c *core, width int, order binary.ByteOrder) uint64 {
	v := readUint(c.buf[c.lo:c.lo+width], width, order)
	c.lo += width
	return v
}

// fillUint writes v as width bytes at lo, advances lo by width.
func fillUint(c *core, width int, order binary.ByteOrder, v uint64) {
	if c.hi-c.lo < width {
		boundsPanic("Fill", width, c.hi-c.lo)
	}
	writeUint(c.buf[c.lo:c.lo+width], width, order, v)
	c.lo += width
}

func unsafeFillUint(c *core, width int, order binary.ByteOrder, v uint64) {
	writeUint(c.buf[c.lo:c.lo+width], width, order, v)
	c.lo += width
}

// peekUint reads width bytes at the window-relative offset pos, without
// advancing lo or hi.
func peekUint(c *core, pos, width int, order binary.ByteOrder) uint64 {
	if pos < 0 || pos+width > c.hi-c.lo {
		boundsPanic("Peek", width, c.hi-c.lo-pos)
	}
	base := c.lo + pos
	return readUint(c.buf[base:base+width], width, order)
}

func unsafePeekUint(c *core, pos, width int, order binary.ByteOrder) uint64 {
	base := c.lo + pos
	return readUint(c.buf[base:base+width], width, order)
}

// pokeUint writes v as width bytes at the window-relative offset pos,
// without advancing lo or hi.
func pokeUint(c *core, pos, width int, order binary.ByteOrder, v uint64) {
	if pos < 0 || pos+width > c.hi-c.lo {
		boundsPanic("Poke", width, c.hi-c.lo-pos)
	}
	base := c.lo + pos
	writeUint(c.buf[base:base+width], width, order, v)
}

func unsafePokeUint(c *core, pos, width int, order binary.ByteOrder, v uint64) {
	base := c.lo + pos
	writeUint(c.buf[base:base+width], width, order, v)
}
