//go:build linux || darwin || freebsd || netbsd || openbsd

package iobuf

import (
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// The syscall adapters below follow a build-tag-gated,
// real-syscall-vs-stub pattern: the real implementation lives in the Unix
// build, a same-signature stub returning errNotSupported lives in
// syscall_other.go, and
// callers never see a compile-time branch.
//
// None of these transform the raw syscall result: EAGAIN is not treated as
// an error condition distinct from any other errno, and EINTR is surfaced
// for the caller's own retry policy.

// ReadAssumeFdIsNonblocking reads into [lo, hi), advancing lo by the number
// of bytes read. The raw syscall result is returned untransformed.
func ReadAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int) (int, error) {
	c := t.c
	n, err := unix.Read(fd, c.buf[c.lo:c.hi])
	if n > 0 {
		c.lo += n
	}
	return n, err
}

// PreadAssumeFdIsNonblocking is a positional variant of
// ReadAssumeFdIsNonblocking; it still advances lo by the number of bytes
// read even though the read itself did not consume from the file's own
// offset.
func PreadAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int, offset int64) (int, error) {
	c := t.c
	n, err := unix.Pread(fd, c.buf[c.lo:c.hi], offset)
	if n > 0 {
		c.lo += n
	}
	return n, err
}

// RecvfromAssumeFdIsNonblocking receives into [lo, hi), advancing lo by the
// number of bytes received, and returns the peer address.
func RecvfromAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int) (int, unix.Sockaddr, error) {
	c := t.c
	n, from, err := unix.Recvfrom(fd, c.buf[c.lo:c.hi], 0)
	if n > 0 {
		c.lo += n
	}
	return n, from, err
}

// WriteAssumeFdIsNonblocking writes [lo, hi), advancing lo by the number of
// bytes written.
func WriteAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int) (int, error) {
	c := t.c
	n, err := unix.Write(fd, c.buf[c.lo:c.hi])
	if n > 0 {
		c.lo += n
	}
	return n, err
}

// PwriteAssumeFdIsNonblocking is a positional variant of
// WriteAssumeFdIsNonblocking.
func PwriteAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int, offset int64) (int, error) {
	c := t.c
	n, err := unix.Pwrite(fd, c.buf[c.lo:c.hi], offset)
	if n > 0 {
		c.lo += n
	}
	return n, err
}

// RecvmmsgAvailable reports whether the current platform provides
// recvmmsg, available only where the platform provides it: feature
// detection happens once here rather than via a compile-time conditional
// exposed to callers.
//
// golang.org/x/sys/unix exposes the SYS_RECVMMSG syscall number on some
// architectures but ships no Mmsghdr type or Recvmmsg wrapper to build the
// call's argument structures from, on any platform this build tag covers.
// Rather than hand-roll the kernel ABI for msghdr/mmsghdr (which differs
// per architecture and is not something to get right without the ability
// to compile and test it), this reports unavailable here, the same as
// syscall_other.go.
func RecvmmsgAvailable() bool { return recvmmsgAvailable }

// RecvmmsgAssumeFdIsNonblocking scatter/gather-receives into bufs, advancing
// each buffer's lo by the number of bytes it received. It panics
// unconditionally; see RecvmmsgAvailable.
func RecvmmsgAssumeFdIsNonblocking[S Seekable](fd int, bufs []Buf[ReadWrite, S]) (int, error) {
	panic("iobuf: recvmmsg not available on this platform")
}

// SendFunc is the function returned by SendNonblockingNoSigpipe /
// SendtoNonblockingNoSigpipe: it sends [lo, hi) of t, advancing lo by the
// number of bytes sent.
type SendFunc[S SeekPerm] func(t Buf[ReadWrite, S], fd int) (int, error)

// SendNonblockingNoSigpipe returns a send function on platforms with
// MSG_NOSIGNAL (or equivalent), and ok=false on platforms without one, so
// the interface stays uniform across platforms rather than branching at
// every call site. unix.Send, like unix.Sendto, does not report a byte
// count on success, so the full window length is reported and consumed on
// a nil error.
func SendNonblockingNoSigpipe[S Seekable]() (fn SendFunc[S], ok bool) {
	return func(t Buf[ReadWrite, S], fd int) (int, error) {
		c := t.c
		err := unix.Send(fd, c.buf[c.lo:c.hi], unix.MSG_NOSIGNAL)
		if err != nil {
			return 0, err
		}
		n := c.hi - c.lo
		c.lo += n
		return n, nil
	}, sendNonblockingNoSigpipeAvailable
}

// SendtoFunc is the function returned by SendtoNonblockingNoSigpipe.
type SendtoFunc[S SeekPerm] func(t Buf[ReadWrite, S], fd int, to unix.Sockaddr) (int, error)

// SendtoNonblockingNoSigpipe is the sendto analogue of
// SendNonblockingNoSigpipe. unix.Sendto does not report a byte count on
// success (the whole buffer is either sent or an error is returned), so the
// full window length is reported and consumed on a nil error.
func SendtoNonblockingNoSigpipe[S Seekable]() (fn SendtoFunc[S], ok bool) {
	return func(t Buf[ReadWrite, S], fd int, to unix.Sockaddr) (int, error) {
		c := t.c
		err := unix.Sendto(fd, c.buf[c.lo:c.hi], unix.MSG_NOSIGNAL, to)
		if err != nil {
			return 0, err
		}
		n := c.hi - c.lo
		c.lo += n
		return n, nil
	}, sendNonblockingNoSigpipeAvailable
}

const recvmmsgAvailable = false
const sendNonblockingNoSigpipeAvailable = true

// connFd extracts the raw file descriptor from a net.Conn whose underlying
// type supports it, for callers that have a net.Conn rather than a bare fd.
// Returns ok=false for connections without a syscall.Conn (e.g. in-memory
// pipes), so callers can fall back gracefully instead of failing outright.
func connFd(c net.Conn) (fd int, ok bool) {
	sc, isSC := c.(syscall.Conn)
	if !isSC {
		return 0, false
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return 0, false
	}
	var out int
	ctrlErr := raw.Control(func(f uintptr) { out = int(f) })
	if ctrlErr != nil {
		return 0, false
	}
	return out, true
}
