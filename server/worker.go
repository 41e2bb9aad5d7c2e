// File: server/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-connection worker: recognize → frame → stream → close. The
// deferred close registered first is the single guaranteed cleanup
// point; every path through the worker, panics included, converges on
// it exactly once.

package server

import (
	"errors"
	"net"
	"time"

	"github.com/momentics/streamix/api"
	"github.com/momentics/streamix/control"
	"github.com/momentics/streamix/protocol"
	"github.com/momentics/streamix/source"
)

func (s *Server) handle(conn *net.TCPConn) {
	ev := control.ConnEvent{
		Time: time.Now(),
		Peer: conn.RemoteAddr().String(),
	}
	defer conn.Close()
	defer func() {
		s.control.Journal().Record(ev)
	}()
	defer func() {
		if r := recover(); r != nil {
			if s.logger != nil {
				s.logger.Printf("worker panic serving %s: %v", ev.Peer, r)
			}
			s.framer.Send(conn, protocol.InternalError())
			s.control.Metrics().Inc(control.MetricConnsErrored)
			ev.Status, ev.Outcome = 500, "panic"
		}
	}()

	m := s.control.Metrics()

	// One bounded receive; the request is never read past the probe.
	buf := s.bufs.GetBuffer()
	n, _ := conn.Read(buf[:protocol.MaxRequestProbe])
	method := protocol.Classify(buf[:n])
	s.bufs.PutBuffer(buf)
	ev.Method = method.String()

	switch method {
	case protocol.MethodEmpty:
		// Nothing arrived. Close without a response.
		m.Inc(control.MetricConnsEmpty)
		ev.Outcome = "empty"
		return
	case protocol.MethodUnsupported:
		s.framer.Send(conn, protocol.MethodNotAllowed())
		m.Inc(control.MetricConnsRejected)
		ev.Status, ev.Outcome = 405, "rejected"
		return
	}

	// GET or HEAD: open an independent handle for this request.
	src, err := source.Open(s.cfg.FilePath)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("open for %s: %v", ev.Peer, err)
		}
		s.framer.Send(conn, protocol.InternalError())
		m.Inc(control.MetricConnsErrored)
		ev.Status, ev.Outcome = 500, "open failed"
		return
	}
	defer src.Close()

	if err := s.framer.Send(conn, protocol.FileOK(src.Size())); err != nil {
		if errors.Is(err, api.ErrPeerClosed) {
			m.Inc(control.MetricPeerDisconnects)
			ev.Outcome = "peer disconnected"
		} else {
			m.Inc(control.MetricConnsErrored)
			ev.Outcome = "header send failed"
		}
		return
	}
	ev.Status = 200

	if method == protocol.MethodHead {
		m.Inc(control.MetricConnsServedHead)
		ev.Outcome = "served"
		return
	}

	written, err := s.engine.Stream(conn, src, src.Size())
	ev.Bytes = written
	m.Add(control.MetricBytesStreamed, written)
	switch {
	case err != nil:
		if s.logger != nil {
			s.logger.Printf("stream to %s: %v", ev.Peer, err)
		}
		m.Inc(control.MetricConnsErrored)
		ev.Outcome = "stream aborted"
	case written < src.Size():
		m.Inc(control.MetricPeerDisconnects)
		m.Inc(control.MetricConnsServedGet)
		ev.Outcome = "peer disconnected"
	default:
		m.Inc(control.MetricConnsServedGet)
		ev.Outcome = "served"
	}
}
