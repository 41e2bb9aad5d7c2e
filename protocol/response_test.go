// File: protocol/response_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/momentics/streamix/api"
)

func TestFileOKWire(t *testing.T) {
	got := string(FileOK(1048576).Bytes())
	want := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: application/octet-stream\r\n" +
		"Content-Length: 1048576\r\n" +
		"Connection: close\r\n" +
		"\r\n"
	if got != want {
		t.Errorf("FileOK wire mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestMethodNotAllowedWire(t *testing.T) {
	got := string(MethodNotAllowed().Bytes())
	want := "HTTP/1.1 405 Method Not Allowed\r\n" +
		"Content-Type: text/plain\r\n" +
		"Allow: GET, HEAD\r\n" +
		"Content-Length: 23\r\n" +
		"Connection: close\r\n" +
		"\r\n" +
		"405 Method Not Allowed\n"
	if got != want {
		t.Errorf("405 wire mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestInternalErrorWire(t *testing.T) {
	got := string(InternalError().Bytes())
	if !strings.HasPrefix(got, "HTTP/1.1 500 Internal Server Error\r\n") {
		t.Errorf("unexpected status line: %q", got)
	}
	if !strings.HasSuffix(got, "\r\n\r\n500 Internal Server Error\n") {
		t.Errorf("unexpected tail: %q", got)
	}
	if !strings.Contains(got, "Connection: close\r\n") {
		t.Errorf("missing Connection: close: %q", got)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestFramerSendPolicy(t *testing.T) {
	fr := &Framer{}
	if err := fr.Send(failingWriter{unix.EPIPE}, MethodNotAllowed()); !errors.Is(err, api.ErrPeerClosed) {
		t.Errorf("Send on broken pipe = %v, want ErrPeerClosed", err)
	}
	hard := errors.New("boom")
	if err := fr.Send(failingWriter{hard}, MethodNotAllowed()); !errors.Is(err, hard) {
		t.Errorf("Send on hard failure = %v, want the write error", err)
	}
	var buf bytes.Buffer
	if err := fr.Send(&buf, MethodNotAllowed()); err != nil {
		t.Errorf("Send to healthy writer = %v", err)
	}
}

func TestIsPeerClosed(t *testing.T) {
	if !IsPeerClosed(unix.EPIPE) || !IsPeerClosed(unix.ECONNRESET) {
		t.Error("pipe-class errnos not recognized")
	}
	if IsPeerClosed(errors.New("other")) {
		t.Error("unrelated error classified as peer close")
	}
}
