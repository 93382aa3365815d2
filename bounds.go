package iobuf

// Narrow sets lo_min <- lo and hi_max <- hi, permanently discarding access
// to everything outside the current window through this handle. Limits may
// only shrink for the lifetime of an iobuf.
func Narrow[D DataPerm, S Seekable](t Buf[D, S]) {
	t.c.loMin = t.c.lo
	t.c.hiMax = t.c.hi
}

// NarrowLo sets lo_min <- lo, discarding access below the current window.
func NarrowLo[D DataPerm, S Seekable](t Buf[D, S]) {
	t.c.loMin = t.c.lo
}

// NarrowHi sets hi_max <- hi, discarding access above the current window.
func NarrowHi[D DataPerm, S Seekable](t Buf[D, S]) {
	t.c.hiMax = t.c.hi
}

// Advance sets lo <- lo + n. Panics if n < 0 or lo+n > hi.
func Advance[D DataPerm, S Seekable](t Buf[D, S], n int) {
	if n < 0 || t.c.lo+n > t.c.hi {
		boundsPanic("Advance", n, t.c.hi-t.c.lo)
	}
	t.c.lo += n
}

// UnsafeAdvance is Advance with the bounds check elided. The caller must
// have already proven lo+n <= hi; otherwise this silently produces an
// invalid window (lo > hi) or corrupts adjacent reads.
func UnsafeAdvance[D DataPerm, S Seekable](t Buf[D, S], n int) {
	t.c.lo += n
}

// Resize sets hi <- lo + len. Panics if len < 0 or lo+len > hi_max.
func Resize[D DataPerm, S Seekable](t Buf[D, S], length int) {
	if length < 0 || t.c.lo+length > t.c.hiMax {
		boundsPanic("Resize", length, t.c.hiMax-t.c.lo)
	}
	t.c.hi = t.c.lo + length
}

// UnsafeResize is Resize with the bounds check elided.
func UnsafeResize[D DataPerm, S Seekable](t Buf[D, S], length int) {
	t.c.hi = t.c.lo + length
}

// Rewind sets lo <- lo_min, re-exposing any previously consumed bytes
// within the current limits.
func Rewind[D DataPerm, S Seekable](t Buf[D, S]) {
	t.c.lo = t.c.loMin
}

// Reset sets lo <- lo_min and hi <- hi_max, restoring the full window
// allowed by the current limits.
func Reset[D DataPerm, S Seekable](t Buf[D, S]) {
	t.c.lo = t.c.loMin
	t.c.hi = t.c.hiMax
}

// FlipLo sets hi <- lo, lo <- lo_min: the window that was just filled
// becomes the window ready to be consumed.
func FlipLo[D DataPerm, S Seekable](t Buf[D, S]) {
	t.c.hi = t.c.lo
	t.c.lo = t.c.loMin
}

// FlipHi sets lo <- hi, hi <- hi_max: the dual of FlipLo, exposing the
// remaining capacity above the just-consumed window for fresh fills.
func FlipHi[D DataPerm, S Seekable](t Buf[D, S]) {
	t.c.lo = t.c.hi
	t.c.hi = t.c.hiMax
}

// LoBound is an opaque, value-typed snapshot of a window's lower edge.
type LoBound struct{ v int }

// HiBound is an opaque, value-typed snapshot of a window's upper edge.
type HiBound struct{ v int }

// LoBoundOf captures t's current lo.
func LoBoundOf[D DataPerm, S SeekPerm](t Buf[D, S]) LoBound {
	return LoBound{v: t.c.lo}
}

// HiBoundOf captures t's current hi.
func HiBoundOf[D DataPerm, S SeekPerm](t Buf[D, S]) HiBound {
	return HiBound{v: t.c.hi}
}

// Restore sets t's lo to the snapshotted value, provided it still lies
// within t's current limits. Restoring a snapshot captured from a different
// iobuf is accepted (no owner token is tracked) but can never widen t's
// limits: the same bounds check applies regardless of provenance.
func (s LoBound) Restore(t Buf[ReadWrite, Seek]) {
	restoreLo(t.c, s.v)
}

// RestoreOn restores s onto any Seekable handle, not only ReadWrite ones,
// since moving lo requires only Seek, not write access.
func RestoreOn[D DataPerm, S Seekable](t Buf[D, S], s LoBound) {
	restoreLo(t.c, s.v)
}

func restoreLo(c *core, v int) {
	if v < c.loMin || v > c.hi {
		boundsPanicf("LoBound.Restore", "snapshot outside current limits")
	}
	c.lo = v
}

// RestoreHiOn restores a HiBound onto any Seekable handle.
func RestoreHiOn[D DataPerm, S Seekable](t Buf[D, S], s HiBound) {
	if s.v < t.c.lo || s.v > t.c.hiMax {
		boundsPanicf("HiBound.Restore", "snapshot outside current limits")
	}
	t.c.hi = s.v
}

// BoundedFlipLo is FlipLo but sets lo to the snapshotted value instead of
// lo_min.
func BoundedFlipLo[D DataPerm, S Seekable](t Buf[D, S], snap LoBound) {
	t.c.hi = t.c.lo
	if snap.v < t.c.loMin || snap.v > t.c.hi {
		boundsPanicf("BoundedFlipLo", "snapshot outside current limits")
	}
	t.c.lo = snap.v
}

// BoundedFlipHi is FlipHi but sets hi to the snapshotted value instead of
// hi_max.
func BoundedFlipHi[D DataPerm, S Seekable](t Buf[D, S], snap HiBound) {
	t.c.lo = t.c.hi
	if snap.v < t.c.lo || snap.v > t.c.hiMax {
		boundsPanicf("BoundedFlipHi", "snapshot outside current limits")
	}
	t.c.hi = snap.v
}

// Compact moves the unread window down to lo_min (preserving its contents)
// and re-exposes the rest of the limits for fresh fills: buf[lo..hi) is
// copied to start at lo_min, then lo <- lo_min + (hi-lo), hi <- hi_max.
//
// Requires write capability because it mutates buf directly via copy,
// collapsed to a single copy() over one backing array (Go's copy() already
// has memmove semantics for overlapping slices of the same array).
func Compact[S Seekable](t Buf[ReadWrite, S]) {
	n := t.c.hi - t.c.lo
	copy(t.c.buf[t.c.loMin:t.c.loMin+n], t.c.buf[t.c.lo:t.c.hi])
	t.c.lo = t.c.loMin + n
	t.c.hi = t.c.hiMax
}

// BoundedCompact is Compact but uses the snapshotted bounds as the
// destination floor and ceiling instead of lo_min/hi_max.
func BoundedCompact[S Seekable](t Buf[ReadWrite, S], loSnap LoBound, hiSnap HiBound) {
	if loSnap.v < t.c.loMin || hiSnap.v > t.c.hiMax || loSnap.v > hiSnap.v {
		boundsPanicf("BoundedCompact", "snapshot outside current limits")
	}
	n := t.c.hi - t.c.lo
	if loSnap.v+n > hiSnap.v {
		boundsPanic("BoundedCompact", n, hiSnap.v-loSnap.v)
	}
	copy(t.c.buf[loSnap.v:loSnap.v+n], t.c.buf[t.c.lo:t.c.hi])
	t.c.lo = loSnap.v + n
	t.c.hi = hiSnap.v
}

// ProtectWindowAndBounds snapshots all four indices of t, temporarily
// upgrades t to Seek, invokes f, and restores the four indices on every
// exit path (including f panicking), via the standard save-state/defer-
// restore shape, generalized from "rollback only on panic" to "always
// restore".
func ProtectWindowAndBounds[D DataPerm, S SeekPerm](t Buf[D, S], f func(Buf[D, Seek])) {
	c := t.c
	loMin, lo, hi, hiMax := c.loMin, c.lo, c.hi, c.hiMax
	defer func() {
		c.loMin, c.lo, c.hi, c.hiMax = loMin, lo, hi, hiMax
	}()
	f(Buf[D, Seek]{c: c})
}
