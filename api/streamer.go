// File: api/streamer.go
// Package api defines the body-transfer contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Streamer transfers exactly length bytes from an open file to a peer
// connection, or stops early when the peer disconnects.
type Streamer interface {
	// Stream sends length bytes of src to dst in bounded chunks.
	//
	// A peer disconnect mid-transfer is a normal outcome: Stream returns
	// the bytes written so far and a nil error. Any other transport
	// failure aborts the transfer and is returned as an error. The
	// returned count never exceeds length.
	Stream(dst Conn, src FileSource, length int64) (written int64, err error)
}

// FileSource is an open, readable handle on the served file together
// with its size as observed at open time.
type FileSource interface {
	// Fd returns the OS descriptor used on the kernel transfer path.
	Fd() uintptr

	// Read supports the user-space fallback transfer path.
	Read(p []byte) (n int, err error)

	// Size reports the byte length captured when the handle was opened.
	// Immutable for the handle's lifetime.
	Size() int64
}
