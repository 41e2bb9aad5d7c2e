// File: internal/stream/engine_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux transfer loop over sendfile(2). The source descriptor's own
// offset advances with each call, so the running position is kept in
// the kernel; the engine only tracks the remaining-byte counter.

package stream

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/streamix/api"
	"github.com/momentics/streamix/protocol"
)

func (e *Engine) transfer(dst api.Conn, src api.FileSource, length int64) (int64, error) {
	rc, err := dst.SyscallConn()
	if err != nil {
		return 0, fmt.Errorf("raw conn: %w", err)
	}
	srcFD := int(src.Fd())

	var written int64
	remaining := length
	for remaining > 0 {
		chunk := e.nextChunk(remaining)

		var n int
		var serr error
		// rc.Write parks the goroutine on the netpoller whenever the
		// inner func reports false, then re-invokes it once the socket
		// is writable again. That is the would-block retry: the same
		// request is reissued, nothing is counted twice.
		werr := rc.Write(func(fd uintptr) bool {
			for {
				n, serr = unix.Sendfile(int(fd), srcFD, nil, int(chunk))
				if n < 0 {
					n = 0
				}
				switch serr {
				case unix.EINTR:
					continue
				case unix.EAGAIN:
					return false
				default:
					return true
				}
			}
		})
		if werr != nil {
			if protocol.IsPeerClosed(werr) {
				return written, nil
			}
			return written, fmt.Errorf("sendfile wait: %w", werr)
		}
		if serr != nil {
			if serr == unix.EPIPE || serr == unix.ECONNRESET {
				// Peer hung up mid-transfer. Normal termination.
				return written, nil
			}
			return written, fmt.Errorf("sendfile: %w", serr)
		}
		if n == 0 {
			// Source is exhausted before the captured size was served;
			// the file must have shrunk underneath us. Stop rather
			// than spin.
			return written, nil
		}
		written += int64(n)
		remaining -= int64(n)
	}
	return written, nil
}
