package iobuf

import (
	"fmt"
	"strings"
)

// DumpBounds selects which region ToStringHum renders.
type DumpBounds int

const (
	// DumpWindow dumps [lo, hi).
	DumpWindow DumpBounds = iota
	// DumpLimits dumps [lo_min, hi_max).
	DumpLimits
	// DumpWhole dumps the entire backing array.
	DumpWhole
)

// ToStringHum returns a multi-line hex+ASCII dump of the region selected by
// bounds. The format is informational only, with no bit-exact output
// contract, styled after the small, single-purpose byte-region helpers
// common to network-buffer types.
func ToStringHum[D Readable, S SeekPerm](t Buf[D, S], bounds DumpBounds) string {
	c := t.c
	var lo, hi int
	switch bounds {
	case DumpWindow:
		lo, hi = c.lo, c.hi
	case DumpLimits:
		lo, hi = c.loMin, c.hiMax
	case DumpWhole:
		lo, hi = 0, len(c.buf)
	default:
		lo, hi = c.lo, c.hi
	}

	var b strings.Builder
	const perLine = 16
	for off := lo; off < hi; off += perLine {
		end := off + perLine
		if end > hi {
			end = hi
		}
		fmt.Fprintf(&b, "%08x  ", off-lo)
		for i := off; i < off+perLine; i++ {
			if i < end {
				fmt.Fprintf(&b, "%02x ", c.buf[i])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(" |")
		for i := off; i < end; i++ {
			ch := c.buf[i]
			if ch >= 0x20 && ch < 0x7f {
				b.WriteByte(ch)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}
