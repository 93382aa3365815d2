// Package iobuf provides a non-moving, contiguous byte region used as the
// primitive data container for zero-copy network and file I/O.
//
// An iobuf (Buf) is described by five coordinates: a backing byte array (the
// "bigstring"), a pair of limits (lo_min, hi_max) bracketing the region this
// handle may ever touch, and a pair of window edges (lo, hi) bracketing the
// bytes currently visible to accessors. Limits only ever shrink; the window
// moves and resizes within them.
//
// Capabilities are enforced at compile time via two phantom type parameters:
// a data permission (ReadOnly, ReadWrite, Immutable) and a seek permission
// (Seek, NoSeek). A Buf with fewer capabilities can always be produced for
// free from one with more; the reverse requires going through a constructor.
//
// Thread Safety:
//
//	A Buf is NOT safe for concurrent use. Exactly one goroutine should hold
//	and mutate a given Buf (or any Buf sharing its backing array) at a time;
//	callers sharing a bigstring across goroutines are responsible for their
//	own synchronization.
//
// Non-goals: an iobuf never reallocates its backing storage, is not
// thread-safe, and never crosses process boundaries.
package iobuf
