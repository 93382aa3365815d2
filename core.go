package iobuf

// Create allocates a fresh bigstring of the given length and returns an
// iobuf whose window and limits both bracket the whole array.
func Create(length int) Buf[ReadWrite, Seek] {
	if length < 0 {
		boundsPanicf("Create", "negative length")
	}
	return Buf[ReadWrite, Seek]{c: &core{
		buf:   make([]byte, length),
		loMin: 0,
		lo:    0,
		hi:    length,
		hiMax: length,
	}}
}

// OfBigstring adopts an existing bigstring, with both window and limits set
// to [pos, pos+len). buf must already be sized to accommodate pos+len; the
// returned handle never re-slices it, so a second OfBigstring call over a
// disjoint subrange of the same array is a valid way to alias it.
//
// Go has no borrow checker, so unlike the source this cannot reject a
// ReadWrite instantiation whose buf provenance traces back to an Immutable
// view; callers adopting a foreign bigstring as ReadWrite are asserting
// that no such aliasing exists.
func OfBigstring[D DataPerm](buf []byte, pos, length int) Buf[D, Seek] {
	if pos < 0 || length < 0 || pos+length > len(buf) {
		boundsPanicf("OfBigstring", "requested range outside backing array")
	}
	return Buf[D, Seek]{c: &core{
		buf:   buf,
		loMin: pos,
		lo:    pos,
		hi:    pos + length,
		hiMax: pos + length,
	}}
}

// OfString allocates a fresh bigstring byte-identical to s.
func OfString(s string) Buf[ReadWrite, Seek] {
	b := make([]byte, len(s))
	copy(b, s)
	return Buf[ReadWrite, Seek]{c: &core{
		buf:   b,
		loMin: 0,
		lo:    0,
		hi:    len(b),
		hiMax: len(b),
	}}
}

// SubShared returns a new handle over the same backing array as t, with
// window and limits both set to [lo(t)+pos, lo(t)+pos+len). Data permission
// is inherited from t; seek permission is freely chosen by the caller via
// the S2 type parameter.
func SubShared[D DataPerm, S SeekPerm, S2 SeekPerm](t Buf[D, S], pos, length int) Buf[D, S2] {
	base := t.c.lo
	if pos < 0 || length < 0 || base+pos+length > t.c.hiMax {
		boundsPanicf("SubShared", "requested subrange outside limits")
	}
	lo := base + pos
	hi := lo + length
	return Buf[D, S2]{c: &core{
		buf:   t.c.buf,
		loMin: lo,
		lo:    lo,
		hi:    hi,
		hiMax: hi,
	}}
}

// SetBoundsAndBuffer overwrites dst's buf and all four indices with src's,
// creating an explicit alias. Both src and dst must carry ReadWrite: this
// is what prevents laundering an Immutable handle into a ReadWrite one.
func SetBoundsAndBuffer[S1, S2 SeekPerm](src Buf[ReadWrite, S1], dst Buf[ReadWrite, S2]) {
	dst.c.buf = src.c.buf
	dst.c.loMin = src.c.loMin
	dst.c.lo = src.c.lo
	dst.c.hi = src.c.hi
	dst.c.hiMax = src.c.hiMax
}

// SetBoundsAndBufferSub is SetBoundsAndBuffer followed by narrowing dst to
// [lo(src)+pos, lo(src)+pos+len), performed in one step without allocating
// an intermediate sub-view.
func SetBoundsAndBufferSub[S1, S2 SeekPerm](src Buf[ReadWrite, S1], dst Buf[ReadWrite, S2], pos, length int) {
	if pos < 0 || length < 0 || src.c.lo+pos+length > src.c.hiMax {
		boundsPanicf("SetBoundsAndBufferSub", "requested subrange outside src limits")
	}
	lo := src.c.lo + pos
	hi := lo + length
	dst.c.buf = src.c.buf
	dst.c.loMin = lo
	dst.c.lo = lo
	dst.c.hi = hi
	dst.c.hiMax = hi
}

// Capacity returns hi_max - lo_min: the total span this handle may ever
// reach, regardless of the current window.
func Capacity[D DataPerm, S SeekPerm](t Buf[D, S]) int {
	return t.c.hiMax - t.c.loMin
}

// Length returns hi - lo: the number of bytes currently in the window.
func Length[D DataPerm, S SeekPerm](t Buf[D, S]) int {
	return t.c.hi - t.c.lo
}

// IsEmpty reports whether the window is empty (lo == hi).
func IsEmpty[D DataPerm, S SeekPerm](t Buf[D, S]) bool {
	return t.c.lo == t.c.hi
}

// Expert exposes the raw geometry for zero-allocation syscall wrappers.
// Writes made through Buf() must themselves respect the limits; the core
// does not defend against writes done behind its back.
type Expert struct {
	c *core
}

// ExpertOf returns the escape-hatch view of t. Requires ReadWrite because
// Buf() hands back the mutable backing array directly.
func ExpertOf[S SeekPerm](t Buf[ReadWrite, S]) Expert {
	return Expert{c: t.c}
}

// Buf returns the raw backing array.
func (e Expert) Buf() []byte { return e.c.buf }

// LoMin returns the current lower limit.
func (e Expert) LoMin() int { return e.c.loMin }

// Lo returns the current lower window edge.
func (e Expert) Lo() int { return e.c.lo }

// Hi returns the current upper window edge.
func (e Expert) Hi() int { return e.c.hi }

// HiMax returns the current upper limit.
func (e Expert) HiMax() int { return e.c.hiMax }
