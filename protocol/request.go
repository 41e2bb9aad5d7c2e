// File: protocol/request.go
// Package protocol implements the minimal HTTP/1.1 surface of streamix:
// request-line recognition and response framing.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import "bytes"

const (
	// MaxRequestProbe bounds the single receive used to recognize a
	// request. The server never reads past this probe: no headers, no
	// body, no path. The single configured file is the implicit target
	// of every GET/HEAD.
	MaxRequestProbe = 4095
)

// Method classifies the leading bytes of a connection.
type Method int

const (
	// MethodEmpty: the initial read produced no bytes. Client error,
	// connection is closed without a response.
	MethodEmpty Method = iota
	MethodGet
	MethodHead
	// MethodUnsupported: anything that is not a GET or HEAD prefix.
	MethodUnsupported
)

var (
	prefixGet  = []byte("GET ")
	prefixHead = []byte("HEAD ")
)

// Classify matches the literal prefixes "GET " and "HEAD " against the
// probe bytes. It is a prefix match, not a parser: the rest of the
// request is never inspected.
func Classify(probe []byte) Method {
	switch {
	case len(probe) == 0:
		return MethodEmpty
	case bytes.HasPrefix(probe, prefixGet):
		return MethodGet
	case bytes.HasPrefix(probe, prefixHead):
		return MethodHead
	default:
		return MethodUnsupported
	}
}

// String returns the method name for logging and journal events.
func (m Method) String() string {
	switch m {
	case MethodEmpty:
		return "EMPTY"
	case MethodGet:
		return "GET"
	case MethodHead:
		return "HEAD"
	default:
		return "UNSUPPORTED"
	}
}
