package iobuf

// DataPerm is the phantom marker for an iobuf's data-access capability.
// ReadOnly, ReadWrite, and Immutable are the only implementations.
type DataPerm interface {
	dataPerm()
}

// SeekPerm is the phantom marker for an iobuf's window/limit-mutation
// capability. Seek and NoSeek are the only implementations.
type SeekPerm interface {
	seekPerm()
}

// ReadOnly marks a Buf that may read bytes but never write them.
type ReadOnly struct{}

func (ReadOnly) dataPerm() {}

// ReadWrite marks a Buf that may both read and write bytes.
type ReadWrite struct{}

func (ReadWrite) dataPerm() {}

// Immutable marks a Buf over data the holder has promised never to alias
// into a ReadWrite handle. It is weaker than ReadOnly for that one purpose:
// SetBoundsAndBuffer and SetBoundsAndBufferSub both require ReadWrite on
// every participant, so an Immutable handle can never launder itself into a
// mutable alias through those operations.
type Immutable struct{}

func (Immutable) dataPerm() {}

// Seek marks a Buf whose window and limits may be mutated (narrow, advance,
// resize, flip, compact, ...).
type Seek struct{}

func (Seek) seekPerm() {}

// NoSeek marks a Buf whose window and limits are fixed. NoSeek handles may
// still read or write bytes within their (immutable) window via Peek/Poke.
type NoSeek struct{}

func (NoSeek) seekPerm() {}

// Readable is satisfied by any DataPerm that may be read: ReadOnly,
// ReadWrite, or Immutable.
type Readable interface {
	DataPerm
	ReadOnly | ReadWrite | Immutable
}

// Writable is satisfied only by ReadWrite: the one DataPerm that may be
// written through.
type Writable interface {
	DataPerm
	ReadWrite
}

// Seekable is satisfied only by Seek: the one SeekPerm that may mutate
// window or limits.
type Seekable interface {
	SeekPerm
	Seek
}

// core holds the 5-tuple described in the package doc: a backing byte array
// that is never re-sliced after construction (all indices below are
// absolute offsets into it, so multiple Buf handles can alias the same
// array independently), the pair of limits, and the pair of window edges.
//
// Invariant, kept by every checked mutating operation (which validates its
// arguments before mutating; the Unsafe variants skip that validation):
//
//	0 <= loMin <= lo <= hi <= hiMax <= len(buf)
type core struct {
	buf   []byte
	loMin int
	lo    int
	hi    int
	hiMax int
}

// Buf is a capability-typed handle onto a core. D gates data access, S
// gates window/limit mutation. The zero value is not usable; obtain a Buf
// via Create, OfBigstring, OfString, or a capability/seek-narrowing
// operation on an existing Buf.
type Buf[D DataPerm, S SeekPerm] struct {
	c *core
}

// AsReadOnly produces a weaker, read-only alias of t. Free: it rewraps the
// same *core under a different (compile-time-only) capability.
func AsReadOnly[D Readable, S SeekPerm](t Buf[D, S]) Buf[ReadOnly, S] {
	return Buf[ReadOnly, S]{c: t.c}
}

// AsImmutable produces an alias of t that has promised not to launder
// itself back into a ReadWrite handle via SetBoundsAndBuffer.
func AsImmutable[D Readable, S SeekPerm](t Buf[D, S]) Buf[Immutable, S] {
	return Buf[Immutable, S]{c: t.c}
}

// AsNoSeek produces an alias of t whose window and limits can no longer be
// mutated, suitable for handing to a sub-parser that must not move the
// parent's cursor out from under it.
func AsNoSeek[D DataPerm, S SeekPerm](t Buf[D, S]) Buf[D, NoSeek] {
	return Buf[D, NoSeek]{c: t.c}
}
