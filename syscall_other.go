//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package iobuf

import (
	"errors"

	"golang.org/x/sys/unix"
)

// errNotSupported is returned by every read/write/recvfrom adapter on
// platforms this build covers (everything but Linux, Darwin and the BSDs):
// they always fail with the same sentinel so callers can fall back uniformly
// regardless of which platform they're actually running on. The recvmmsg
// adapter panics instead, and the send factories return ok=false.
var errNotSupported = errors.New("iobuf: syscall adapter not supported on this platform")

func ReadAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int) (int, error) {
	return 0, errNotSupported
}

func PreadAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int, offset int64) (int, error) {
	return 0, errNotSupported
}

func RecvfromAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int) (int, unix.Sockaddr, error) {
	return 0, nil, errNotSupported
}

func WriteAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int) (int, error) {
	return 0, errNotSupported
}

func PwriteAssumeFdIsNonblocking[S Seekable](t Buf[ReadWrite, S], fd int, offset int64) (int, error) {
	return 0, errNotSupported
}

func RecvmmsgAvailable() bool { return false }

func RecvmmsgAssumeFdIsNonblocking[S Seekable](fd int, bufs []Buf[ReadWrite, S]) (int, error) {
	panic("iobuf: recvmmsg not available on this platform")
}

type SendFunc[S SeekPerm] func(t Buf[ReadWrite, S], fd int) (int, error)

func SendNonblockingNoSigpipe[S Seekable]() (fn SendFunc[S], ok bool) {
	return nil, false
}

type SendtoFunc[S SeekPerm] func(t Buf[ReadWrite, S], fd int, to unix.Sockaddr) (int, error)

func SendtoNonblockingNoSigpipe[S Seekable]() (fn SendtoFunc[S], ok bool) {
	return nil, false
}
