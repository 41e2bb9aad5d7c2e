// File: server/types.go
// Package server wires the acceptor loop, connection workers, and the
// streaming pipeline into the streamix facade.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package server

import (
	"log"
	"net"
	"sync"

	"github.com/momentics/streamix/control"
	"github.com/momentics/streamix/internal/stream"
	"github.com/momentics/streamix/pool"
	"github.com/momentics/streamix/protocol"
)

// Config holds all server-side configuration parameters. The surface
// is deliberately static: no flags, no environment, no reload.
type Config struct {
	ListenAddr string // TCP bind address, e.g. "0.0.0.0:8080"
	FilePath   string // the single served file
	ChunkSize  int64  // per-request kernel transfer bound
	JournalCap int    // retained connection events
}

// DefaultConfig returns the stock deployment parameters.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: "0.0.0.0:8080",
		FilePath:   "/var/www/big_file",
		ChunkSize:  stream.DefaultChunkSize,
		JournalCap: 512,
	}
}

// Server owns the listening socket for its whole lifetime and spawns
// one worker goroutine per accepted connection. Workers share no
// mutable state beyond the control counters; there is no admission
// control and no per-connection deadline. Both are deliberate: the
// concurrency bound equals the number of open connections.
type Server struct {
	cfg     *Config
	logger  *log.Logger
	control *control.Adapter
	engine  *stream.Engine
	framer  *protocol.Framer
	bufs    *pool.BytePool

	ln        net.Listener
	closeOnce sync.Once
}
