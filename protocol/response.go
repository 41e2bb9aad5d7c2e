// File: protocol/response.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Response framing. The wire format is fixed:
//
//	HTTP/1.1 <code> <reason>\r\n
//	<header lines...>\r\n
//	[Content-Length: <n>\r\n]   (only when a body is attached)
//	Connection: close\r\n
//	\r\n
//	[<body>]
//
// Success responses carry Content-Length as an explicit header line
// instead of a body: their payload is streamed separately through the
// kernel transfer path.

package protocol

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/momentics/streamix/api"
)

// Response is a value type built fresh per reply; no shared state.
type Response struct {
	Code    int
	Reason  string
	Headers []string // ordered, without trailing CRLF
	Body    []byte
}

// FileOK frames a 200 for a servable file of the given size. The body
// is streamed by the caller, so the size travels as a header line.
func FileOK(size int64) *Response {
	return &Response{
		Code:   200,
		Reason: "OK",
		Headers: []string{
			"Content-Type: application/octet-stream",
			fmt.Sprintf("Content-Length: %d", size),
		},
	}
}

// MethodNotAllowed frames the 405 sent for non-GET/HEAD prefixes.
func MethodNotAllowed() *Response {
	return &Response{
		Code:   405,
		Reason: "Method Not Allowed",
		Headers: []string{
			"Content-Type: text/plain",
			"Allow: GET, HEAD",
		},
		Body: []byte("405 Method Not Allowed\n"),
	}
}

// InternalError frames the 500 sent on an unhandled mid-request failure.
func InternalError() *Response {
	return &Response{
		Code:   500,
		Reason: "Internal Server Error",
		Headers: []string{
			"Content-Type: text/plain",
		},
		Body: []byte("500 Internal Server Error\n"),
	}
}

// Bytes serializes the response head and body into wire form.
func (r *Response) Bytes() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", r.Code, r.Reason)
	for _, h := range r.Headers {
		b.WriteString(h)
		b.WriteString("\r\n")
	}
	if len(r.Body) > 0 {
		fmt.Fprintf(&b, "Content-Length: %d\r\n", len(r.Body))
	}
	b.WriteString("Connection: close\r\n\r\n")
	out := []byte(b.String())
	return append(out, r.Body...)
}

// Framer sends framed responses over peer connections.
//
// A failed send is never fatal: a peer that disappeared mid-reply is
// normal client behavior, and any other transport failure is confined
// to the one connection, which the caller closes right after. Broken
// pipes are swallowed silently; other failures are logged when a
// logger is attached.
type Framer struct {
	Log *log.Logger
}

// Send writes resp to c. It returns nil when the full response head
// reached the socket buffer, api.ErrPeerClosed when the remote hung
// up, and the underlying write error otherwise. Callers treat any
// non-nil result as send-and-forget: close the connection, move on.
func (fr *Framer) Send(c io.Writer, resp *Response) error {
	if _, err := c.Write(resp.Bytes()); err != nil {
		if IsPeerClosed(err) {
			return api.ErrPeerClosed
		}
		if fr.Log != nil {
			fr.Log.Printf("send %d response: %v", resp.Code, err)
		}
		return err
	}
	return nil
}

// IsPeerClosed reports whether err is a broken-pipe-class condition:
// the remote end closed its side while we were writing.
func IsPeerClosed(err error) bool {
	return errors.Is(err, unix.EPIPE) || errors.Is(err, unix.ECONNRESET)
}
