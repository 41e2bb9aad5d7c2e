// File: source/file.go
// Package source manages handles on the single served file.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package source

import (
	"fmt"
	"os"
)

// File is an open read-only handle on the served file plus its byte
// length captured at open time. The length is never re-checked: the
// file is assumed static for the process lifetime.
type File struct {
	f    *os.File
	size int64
}

// Open opens path read-only and captures its current size.
//
// Called once eagerly at startup to fail fast on an inaccessible file,
// and again per request by the connection worker. Each handle must be
// closed exactly once.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("open %s: is a directory", path)
	}
	return &File{f: f, size: fi.Size()}, nil
}

// Fd returns the OS descriptor for the kernel transfer path.
func (s *File) Fd() uintptr { return s.f.Fd() }

// Read reads from the handle's current offset.
func (s *File) Read(p []byte) (int, error) { return s.f.Read(p) }

// Size reports the byte length observed at open time.
func (s *File) Size() int64 { return s.size }

// Close releases the descriptor.
func (s *File) Close() error { return s.f.Close() }
