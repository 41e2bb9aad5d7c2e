// File: server/options.go
// Package server defines functional options for the Server facade.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package server

import (
	"log"

	"github.com/momentics/streamix/control"
	"github.com/momentics/streamix/pool"
)

// ServerOption customizes server initialization.
type ServerOption func(*Server)

// WithLogger attaches a logger for accept and per-connection events.
// Without one the server is silent.
func WithLogger(l *log.Logger) ServerOption {
	return func(s *Server) {
		s.logger = l
	}
}

// WithControl supplies an externally owned control adapter, letting
// several subsystems share one metrics surface.
func WithControl(c *control.Adapter) ServerOption {
	return func(s *Server) {
		s.control = c
	}
}

// WithReadBufferPool overrides the request probe buffer pool.
func WithReadBufferPool(bp *pool.BytePool) ServerOption {
	return func(s *Server) {
		s.bufs = bp
	}
}
