//go:build linux || darwin || freebsd || netbsd || openbsd

package iobuf

import (
	"net"
	"testing"
)

func TestSendNonblockingNoSigpipeAvailability(t *testing.T) {
	fn, ok := SendNonblockingNoSigpipe[Seek]()
	if !ok {
		t.Fatal("SendNonblockingNoSigpipe reported unavailable on a Unix-family build")
	}
	if fn == nil {
		t.Fatal("SendNonblockingNoSigpipe returned ok=true with a nil function")
	}
}

func TestSendtoNonblockingNoSigpipeAvailability(t *testing.T) {
	fn, ok := SendtoNonblockingNoSigpipe[Seek]()
	if !ok {
		t.Fatal("SendtoNonblockingNoSigpipe reported unavailable on a Unix-family build")
	}
	if fn == nil {
		t.Fatal("SendtoNonblockingNoSigpipe returned ok=true with a nil function")
	}
}

func TestRecvmmsgUnavailableOnUnix(t *testing.T) {
	if RecvmmsgAvailable() {
		t.Fatal("RecvmmsgAvailable reported true although RecvmmsgAssumeFdIsNonblocking always panics")
	}
}

func TestConnFdOnNonSyscallConn(t *testing.T) {
	// net.Pipe returns an in-memory net.Conn with no underlying fd.
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	if _, ok := connFd(client); ok {
		t.Fatal("connFd reported ok=true for an in-memory net.Pipe conn")
	}
}
