// File: internal/stream/engine_generic.go
//go:build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback transfer loop for platforms without sendfile(2) support in
// this package. Copies through user space but keeps the same chunking
// and termination contract as the linux path.

package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/momentics/streamix/api"
	"github.com/momentics/streamix/protocol"
)

func (e *Engine) transfer(dst api.Conn, src api.FileSource, length int64) (int64, error) {
	var written int64
	remaining := length
	for remaining > 0 {
		chunk := e.nextChunk(remaining)
		n, err := io.CopyN(dst, src, chunk)
		written += n
		remaining -= n
		if err != nil {
			if protocol.IsPeerClosed(err) {
				return written, nil
			}
			if errors.Is(err, io.EOF) {
				// File shorter than the size captured at open time.
				return written, nil
			}
			return written, fmt.Errorf("copy: %w", err)
		}
	}
	return written, nil
}
