package iobuf

// The blit family copies bytes between two iobufs (or an iobuf and a raw
// bigstring), selectively advancing zero, one, or both cursors. copy()
// already implements memmove semantics for overlapping slices of the same
// backing array, so no special overlap handling is needed beyond the usual
// bounds check.

// Blit copies length bytes from src[srcPos:srcPos+length] (window-relative)
// to dst[dstPos:dstPos+length] (window-relative). Neither cursor advances;
// neither handle needs Seek.
func Blit[D1 Readable, S1 SeekPerm, D2 Writable, S2 SeekPerm](src Buf[D1, S1], srcPos int, dst Buf[D2, S2], dstPos, length int) {
	sc, dc := src.c, dst.c
	if srcPos < 0 || length < 0 || srcPos+length > sc.hi-sc.lo {
		boundsPanic("Blit", length, sc.hi-sc.lo-srcPos)
	}
	if dstPos < 0 || dstPos+length > dc.hi-dc.lo {
		boundsPanic("Blit", length, dc.hi-dc.lo-dstPos)
	}
	copy(dc.buf[dc.lo+dstPos:dc.lo+dstPos+length], sc.buf[sc.lo+srcPos:sc.lo+srcPos+length])
}

// Blito is Blit with the standard defaults dst_pos = 0, src_len =
// Length(src).
func Blito[D1 Readable, S1 SeekPerm, D2 Writable, S2 SeekPerm](src Buf[D1, S1], dst Buf[D2, S2]) {
	Blit(src, 0, dst, 0, src.c.hi-src.c.lo)
}

// UnsafeBlit is Blit with the bounds check elided.
func UnsafeBlit[D1 Readable, S1 SeekPerm, D2 Writable, S2 SeekPerm](src Buf[D1, S1], srcPos int, dst Buf[D2, S2], dstPos, length int) {
	sc, dc := src.c, dst.c
	copy(dc.buf[dc.lo+dstPos:dc.lo+dstPos+length], sc.buf[sc.lo+srcPos:sc.lo+srcPos+length])
}

// BlitConsume copies length bytes from src's lo to dst[dstPos:dstPos+length]
// (window-relative), advancing src's lo by length. src needs Seek; dst does
// not.
func BlitConsume[D1 Readable, S1 Seekable, D2 Writable, S2 SeekPerm](src Buf[D1, S1], dst Buf[D2, S2], dstPos, length int) {
	sc, dc := src.c, dst.c
	if length < 0 || sc.hi-sc.lo < length {
		boundsPanic("BlitConsume", length, sc.hi-sc.lo)
	}
	if dstPos < 0 || dstPos+length > dc.hi-dc.lo {
		boundsPanic("BlitConsume", length, dc.hi-dc.lo-dstPos)
	}
	copy(dc.buf[dc.lo+dstPos:dc.lo+dstPos+length], sc.buf[sc.lo:sc.lo+length])
	sc.lo += length
}

// BlitConsumeo is BlitConsume with the standard defaults dst_pos = 0,
// src_len = Length(src).
func BlitConsumeo[D1 Readable, S1 Seekable, D2 Writable, S2 SeekPerm](src Buf[D1, S1], dst Buf[D2, S2]) {
	BlitConsume(src, dst, 0, src.c.hi-src.c.lo)
}

// UnsafeBlitConsume is BlitConsume with the bounds check elided.
func UnsafeBlitConsume[D1 Readable, S1 Seekable, D2 Writable, S2 SeekPerm](src Buf[D1, S1], dst Buf[D2, S2], dstPos, length int) {
	sc, dc := src.c, dst.c
	copy(dc.buf[dc.lo+dstPos:dc.lo+dstPos+length], sc.buf[sc.lo:sc.lo+length])
	sc.lo += length
}

// BlitFill copies length bytes from src[srcPos:srcPos+length]
// (window-relative) to dst's lo, advancing dst's lo by length. dst needs
// Seek; src does not.
func BlitFill[D1 Readable, S1 SeekPerm, D2 Writable, S2 Seekable](src Buf[D1, S1], srcPos int, dst Buf[D2, S2], length int) {
	sc, dc := src.c, dst.c
	if srcPos < 0 || length < 0 || srcPos+length > sc.hi-sc.lo {
		boundsPanic("BlitFill", length, sc.hi-sc.lo-srcPos)
	}
	if dc.hi-dc.lo < length {
		boundsPanic("BlitFill", length, dc.hi-dc.lo)
	}
	copy(dc.buf[dc.lo:dc.lo+length], sc.buf[sc.lo+srcPos:sc.lo+srcPos+length])
	dc.lo += length
}

// BlitFillo is BlitFill with the standard defaults src_pos = 0, src_len =
// Length(src).
func BlitFillo[D1 Readable, S1 SeekPerm, D2 Writable, S2 Seekable](src Buf[D1, S1], dst Buf[D2, S2]) {
	BlitFill(src, 0, dst, src.c.hi-src.c.lo)
}

// UnsafeBlitFill is BlitFill with the bounds check elided.
func UnsafeBlitFill[D1 Readable, S1 SeekPerm, D2 Writable, S2 Seekable](src Buf[D1, S1], srcPos int, dst Buf[D2, S2], length int) {
	sc, dc := src.c, dst.c
	copy(dc.buf[dc.lo:dc.lo+length], sc.buf[sc.lo+srcPos:sc.lo+srcPos+length])
	dc.lo += length
}

// BlitConsumeAndFill copies length bytes from src's lo to dst's lo,
// advancing both. Both handles need Seek.
func BlitConsumeAndFill[D1 Readable, S1 Seekable, D2 Writable, S2 Seekable](src Buf[D1, S1], dst Buf[D2, S2], length int) {
	sc, dc := src.c, dst.c
	if length < 0 || sc.hi-sc.lo < length {
		boundsPanic("BlitConsumeAndFill", length, sc.hi-sc.lo)
	}
	if dc.hi-dc.lo < length {
		boundsPanic("BlitConsumeAndFill", length, dc.hi-dc.lo)
	}
	copy(dc.buf[dc.lo:dc.lo+length], sc.buf[sc.lo:sc.lo+length])
	sc.lo += length
	dc.lo += length
}

// BlitConsumeAndFillo is BlitConsumeAndFill with the standard default
// src_len = Length(src).
func BlitConsumeAndFillo[D1 Readable, S1 Seekable, D2 Writable, S2 Seekable](src Buf[D1, S1], dst Buf[D2, S2]) {
	BlitConsumeAndFill(src, dst, src.c.hi-src.c.lo)
}

// UnsafeBlitConsumeAndFill is BlitConsumeAndFill with the bounds check
// elided.
func UnsafeBlitConsumeAndFill[D1 Readable, S1 Seekable, D2 Writable, S2 Seekable](src Buf[D1, S1], dst Buf[D2, S2], length int) {
	sc, dc := src.c, dst.c
	copy(dc.buf[dc.lo:dc.lo+length], sc.buf[sc.lo:sc.lo+length])
	sc.lo += length
	dc.lo += length
}

// BlitSub returns a new, independently-owned iobuf over a copy of
// src[pos:pos+length] (window-relative). Neither cursor of src advances.
func BlitSub[D Readable, S SeekPerm](src Buf[D, S], pos, length int) Buf[ReadWrite, Seek] {
	return wrapOwned(PeekBytes(src, pos, length))
}

// BlitSubo is BlitSub with the standard defaults pos = 0, len = Length(src).
func BlitSubo[D Readable, S SeekPerm](src Buf[D, S]) Buf[ReadWrite, Seek] {
	return BlitSub(src, 0, src.c.hi-src.c.lo)
}

// BlitConsumeSub returns a new, independently-owned iobuf over a copy of
// the next length bytes of src, advancing src's lo by length.
func BlitConsumeSub[D Readable, S Seekable](src Buf[D, S], length int) Buf[ReadWrite, Seek] {
	return wrapOwned(ConsumeBytes(src, length))
}

// BlitConsumeSubo is BlitConsumeSub with the standard default length =
// Length(src).
func BlitConsumeSubo[D Readable, S Seekable](src Buf[D, S]) Buf[ReadWrite, Seek] {
	return BlitConsumeSub(src, src.c.hi-src.c.lo)
}

// wrapOwned wraps an already-owned byte slice (such as the result of
// PeekBytes/ConsumeBytes, which always allocate fresh copies) as a new
// iobuf without a second copy.
func wrapOwned(owned []byte) Buf[ReadWrite, Seek] {
	return Buf[ReadWrite, Seek]{c: &core{
		buf:   owned,
		loMin: 0,
		lo:    0,
		hi:    len(owned),
		hiMax: len(owned),
	}}
}
