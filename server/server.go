// File: server/server.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/momentics/streamix/api"
	"github.com/momentics/streamix/control"
	"github.com/momentics/streamix/internal/stream"
	"github.com/momentics/streamix/pool"
	"github.com/momentics/streamix/protocol"
	"github.com/momentics/streamix/source"
)

// New binds the listening socket and verifies the served file is
// accessible. Both checks fail fast: a server that cannot establish
// its listener or read its file must not start serving traffic.
func New(cfg *Config, opts ...ServerOption) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Eager open: fail before the first connection, not during it.
	probe, err := source.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("served file: %w", err)
	}
	probe.Close()

	ln, err := listen(cfg.ListenAddr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		engine: stream.NewEngine(cfg.ChunkSize),
		ln:     ln,
	}
	for _, o := range opts {
		o(s)
	}
	if s.control == nil {
		s.control = control.NewAdapter(cfg.JournalCap)
	}
	if s.bufs == nil {
		s.bufs = pool.NewBytePool(protocol.MaxRequestProbe)
	}
	s.framer = &protocol.Framer{Log: s.logger}
	return s, nil
}

// Addr reports the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Control exposes runtime metrics and debug probes.
func (s *Server) Control() api.Control {
	return s.control
}

// Serve accepts connections until Shutdown closes the listener,
// handing each accepted connection to its own worker goroutine. The
// loop never waits for a worker to finish: a slow peer occupies its
// worker, nothing else.
//
// Serve returns api.ErrServerClosed after Shutdown; any other accept
// failure is logged and the loop keeps going.
func (s *Server) Serve() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return api.ErrServerClosed
			}
			if s.logger != nil {
				s.logger.Printf("accept: %v", err)
			}
			continue
		}
		s.control.Metrics().Inc(control.MetricConnsAccepted)
		go s.handle(conn.(*net.TCPConn))
	}
}

// Shutdown closes the listener, stopping the accept loop. In-flight
// workers run to completion; they own their connections exclusively.
func (s *Server) Shutdown() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.ln.Close()
	})
	return err
}
