// File: api/conn.go
// Author: momentics <momentics@gmail.com>
//
// Defines the duplex connection abstraction consumed by the protocol
// and streaming layers, decoupled from net.Conn for testability.

package api

import "syscall"

// Conn abstracts an accepted peer connection.
//
// The streaming engine additionally requires access to the raw socket
// descriptor, expressed through syscall.Conn so the kernel transfer path
// can cooperate with the runtime netpoller.
type Conn interface {
	// Read reads into a preallocated buffer.
	Read(p []byte) (n int, err error)

	// Write writes buffer contents into the connection.
	Write(p []byte) (n int, err error)

	// Close shuts down the connection and releases the descriptor.
	// Must be safe to call exactly once per connection lifetime.
	Close() error

	// SyscallConn exposes the underlying descriptor for zero-copy I/O.
	SyscallConn() (syscall.RawConn, error)
}
