// File: api/errors.go
// Package api defines common error values for the streamix library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "errors"

// Sentinel errors shared across the library.
var (
	// ErrEmptyRequest marks a connection whose first read yielded no bytes.
	// The worker closes such a connection without sending a response.
	ErrEmptyRequest = errors.New("empty request")

	// ErrUnsupportedMethod marks a request line that matches neither
	// "GET " nor "HEAD ".
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrPeerClosed reports that the remote end hung up mid-transfer.
	// A normal outcome for a worker, never a process-level failure.
	ErrPeerClosed = errors.New("peer closed connection")

	// ErrServerClosed is returned by Serve after Shutdown closed the listener.
	ErrServerClosed = errors.New("server closed")
)
