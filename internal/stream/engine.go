// File: internal/stream/engine.go
// Package stream implements the chunked zero-copy body transfer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The engine pushes file bytes into a peer socket in bounded chunks,
// preferring the kernel file-to-socket path so payload bytes never
// cross user space. Platform-specific transfer loops live in
// engine_linux.go and engine_generic.go.

package stream

import (
	"github.com/momentics/streamix/api"
)

// DefaultChunkSize bounds a single transfer request to the kernel.
const DefaultChunkSize = 8 << 20 // 8 MiB

// Engine is the body transfer engine. The zero value is not usable;
// construct with NewEngine.
type Engine struct {
	chunkSize int64
}

var _ api.Streamer = (*Engine)(nil)

// NewEngine creates an engine with the given chunk bound.
// A non-positive chunk falls back to DefaultChunkSize.
func NewEngine(chunkSize int64) *Engine {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Engine{chunkSize: chunkSize}
}

// ChunkSize reports the per-request transfer bound.
func (e *Engine) ChunkSize() int64 { return e.chunkSize }

// Stream transfers length bytes of src to dst in chunks of at most
// ChunkSize, starting at src's current offset.
//
// Transient conditions (would-block, interrupted call) are retried in
// place without double-counting. A peer disconnect stops the transfer
// early and returns the bytes written so far with a nil error: the
// remote hanging up is normal client behavior, not a defect. Any other
// transport failure aborts with an error. The returned count never
// exceeds length.
func (e *Engine) Stream(dst api.Conn, src api.FileSource, length int64) (int64, error) {
	return e.transfer(dst, src, length)
}

func (e *Engine) nextChunk(remaining int64) int64 {
	if remaining < e.chunkSize {
		return remaining
	}
	return e.chunkSize
}
