package iobuf

import "hash/crc32"

// Crc32 computes the CRC-32 (IEEE polynomial) checksum over the window
// [lo, hi). CRC32 is an external collaborator with no algorithmic surface
// of its own to design here; this wraps the stdlib implementation, which is
// the one the wider ecosystem itself uses for this exact algorithm. A
// uint32 is the natural Go representation of a 32-bit checksum.
func Crc32[D Readable, S SeekPerm](t Buf[D, S]) uint32 {
	return crc32.ChecksumIEEE(t.c.buf[t.c.lo:t.c.hi])
}
