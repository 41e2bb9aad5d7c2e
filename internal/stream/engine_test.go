// File: internal/stream/engine_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stream

import (
	"bytes"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/momentics/streamix/source"
)

type streamResult struct {
	written int64
	err     error
}

// runTransfer streams the file at path to a loopback client and
// returns the client-observed bytes plus the engine result.
func runTransfer(t *testing.T, e *Engine, path string, length int64) ([]byte, streamResult) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	resCh := make(chan streamResult, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			resCh <- streamResult{err: err}
			return
		}
		defer conn.Close()
		src, err := source.Open(path)
		if err != nil {
			resCh <- streamResult{err: err}
			return
		}
		defer src.Close()
		n, err := e.Stream(conn.(*net.TCPConn), src, length)
		resCh <- streamResult{written: n, err: err}
	}()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	got, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	return got, <-resCh
}

func writeFixture(t *testing.T, size int) (string, []byte) {
	t.Helper()
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	path := filepath.Join(t.TempDir(), "payload.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path, data
}

func TestStreamFinalPartialChunk(t *testing.T) {
	const chunk = 64 << 10
	size := chunk*3 + 17
	path, data := writeFixture(t, size)

	got, res := runTransfer(t, NewEngine(chunk), path, int64(size))
	if res.err != nil {
		t.Fatalf("Stream() error: %v", res.err)
	}
	if res.written != int64(size) {
		t.Errorf("Stream() written = %d, want %d", res.written, size)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("received %d bytes, payload mismatch (want %d bytes)", len(got), size)
	}
}

func TestStreamExactChunkMultiple(t *testing.T) {
	const chunk = 32 << 10
	path, data := writeFixture(t, chunk*4)

	got, res := runTransfer(t, NewEngine(chunk), path, int64(len(data)))
	if res.err != nil {
		t.Fatalf("Stream() error: %v", res.err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("received %d bytes, want %d", len(got), len(data))
	}
}

func TestStreamNeverExceedsLength(t *testing.T) {
	path, data := writeFixture(t, 10000)

	got, res := runTransfer(t, NewEngine(4096), path, 6000)
	if res.err != nil {
		t.Fatalf("Stream() error: %v", res.err)
	}
	if res.written != 6000 {
		t.Errorf("Stream() written = %d, want 6000", res.written)
	}
	if !bytes.Equal(got, data[:6000]) {
		t.Errorf("received %d bytes, want the first 6000", len(got))
	}
}

func TestStreamPeerDisconnect(t *testing.T) {
	// Large enough that kernel socket buffers cannot absorb it all.
	const size = 32 << 20
	path := filepath.Join(t.TempDir(), "big.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	if err := f.Truncate(size); err != nil {
		t.Fatalf("truncate fixture: %v", err)
	}
	f.Close()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	resCh := make(chan streamResult, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			resCh <- streamResult{err: err}
			return
		}
		defer conn.Close()
		src, err := source.Open(path)
		if err != nil {
			resCh <- streamResult{err: err}
			return
		}
		defer src.Close()
		n, err := NewEngine(256<<10).Stream(conn.(*net.TCPConn), src, src.Size())
		resCh <- streamResult{written: n, err: err}
	}()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	// Read a little, then hang up with data still in flight.
	buf := make([]byte, 4096)
	_, _ = conn.Read(buf)
	conn.Close()

	res := <-resCh
	if res.err != nil {
		t.Fatalf("peer disconnect surfaced as error: %v", res.err)
	}
	if res.written > size {
		t.Errorf("written %d exceeds file size %d", res.written, size)
	}
}
